package pricing

import (
	"strconv"
	"strings"
)

// Literal phrases the catalog uses to mark pricing behaviour. Matching is a
// plain case-sensitive substring test in both site languages; catalog copy
// depends on these exact spellings.
var (
	perPersonMarkers    = []string{"per person", "/person", "للشخص", "لكل شخص", "للفرد"}
	groupPackageMarkers = []string{"Group Package", "باقة المجموعة", "باقة جماعية"}
	totalMarkers        = []string{"Total", "إجمالي", "المجموع"}

	mealMarkers         = []string{"Meal", "Lunch", "Dinner", "Breakfast", "وجبة", "غداء", "عشاء", "إفطار"}
	customTimingMarkers = []string{"Custom Timing", "توقيت مخصص"}
	groupVariantMarkers = []string{"Group", "مجموعة", "جماعي"}
	vipMarkers          = []string{"VIP", "كبار الشخصيات"}
)

// AddOnKind is how an add-on takes part in the total
type AddOnKind string

const (
	AddOnRegular           AddOnKind = "regular"
	AddOnMeal              AddOnKind = "meal"
	AddOnCustomTiming      AddOnKind = "custom_timing"
	AddOnCustomTimingGroup AddOnKind = "custom_timing_group"
	AddOnVIP               AddOnKind = "vip"
)

// ClassifyAddOn tags an add-on by its name. Meal wins over everything, then
// custom timing, then VIP.
func ClassifyAddOn(name string) AddOnKind {
	switch {
	case containsAny(name, mealMarkers):
		return AddOnMeal
	case containsAny(name, customTimingMarkers):
		if containsAny(name, groupVariantMarkers) {
			return AddOnCustomTimingGroup
		}
		return AddOnCustomTiming
	case containsAny(name, vipMarkers):
		return AddOnVIP
	default:
		return AddOnRegular
	}
}

func IsVIP(name string) bool {
	return ClassifyAddOn(name) == AddOnVIP
}

func IsPerPerson(priceText string) bool {
	return containsAny(priceText, perPersonMarkers)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// ParseAmount extracts the first number in a price text such as
// "3,700 SAR" or "٣٬٧٠٠ ريال". Arabic-Indic digits and separators are
// accepted.
func ParseAmount(text string) (float64, bool) {
	var (
		digits  strings.Builder
		started bool
		seenDot bool
	)

	runes := []rune(text)
	for i, r := range runes {
		d, isDigit := asciiDigit(r)
		switch {
		case isDigit:
			digits.WriteRune(d)
			started = true
		case started && (r == ',' || r == '٬') && i+1 < len(runes) && isAnyDigit(runes[i+1]):
			// thousands separator
		case started && (r == '.' || r == '٫') && !seenDot && i+1 < len(runes) && isAnyDigit(runes[i+1]):
			digits.WriteRune('.')
			seenDot = true
		case started:
			return parseDigits(digits.String())
		}
	}

	if !started {
		return 0, false
	}
	return parseDigits(digits.String())
}

func parseDigits(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func asciiDigit(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r, true
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠'), true
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰'), true
	}
	return 0, false
}

func isAnyDigit(r rune) bool {
	_, ok := asciiDigit(r)
	return ok
}
