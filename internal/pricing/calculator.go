package pricing

import (
	"math"

	"tourly/internal/catalog"
)

// Selection is what the visitor picked in the booking dialog
type Selection struct {
	Package      string   `json:"package"`
	Participants int      `json:"participants"`
	AddOns       []string `json:"addOns"`
}

type Override string

const (
	OverrideNone         Override = ""
	OverrideCustomTiming Override = "custom_timing"
	OverrideVIP          Override = "vip"
)

// Quote is the computed total with the pieces that produced it
type Quote struct {
	BasePrice    float64  `json:"basePrice"`
	AddOnsTotal  float64  `json:"addOnsTotal"`
	CustomTiming float64  `json:"customTiming"`
	VIP          float64  `json:"vip"`
	SkippedMeals []string `json:"skippedMeals,omitempty"`
	Override     Override `json:"override,omitempty"`
	Total        float64  `json:"total"`
}

// Calculate returns the booking total for a selection. It never fails:
// unknown names and unparsable prices contribute nothing.
func Calculate(trip *catalog.Trip, sel Selection) float64 {
	return QuoteFor(trip, sel).Total
}

// QuoteFor runs the pricing rules and keeps the breakdown.
//
// Custom timing replaces everything else, then VIP replaces everything else,
// otherwise the total is the package price plus regular add-ons. Meal add-ons
// are paid on site and never counted.
func QuoteFor(trip *catalog.Trip, sel Selection) Quote {
	var q Quote
	if trip == nil || sel.Package == "" || sel.Participants < 1 {
		return q
	}
	participants := float64(sel.Participants)

	if tier, ok := trip.Tier(sel.Package); ok {
		q.BasePrice = basePrice(tier, participants)
	}

	var hasCustomTiming, hasVIP bool
	for _, name := range sel.AddOns {
		addOn, ok := trip.AddOn(name)
		if !ok {
			continue
		}
		amount, _ := ParseAmount(addOn.Price)

		switch ClassifyAddOn(addOn.Name) {
		case AddOnMeal:
			q.SkippedMeals = append(q.SkippedMeals, addOn.Name)
		case AddOnCustomTimingGroup:
			q.CustomTiming += amount
			hasCustomTiming = true
		case AddOnCustomTiming:
			q.CustomTiming += amount * participants
			hasCustomTiming = true
		case AddOnVIP:
			q.VIP += amount * participants
			hasVIP = true
		default:
			q.AddOnsTotal += amount * participants
		}
	}

	switch {
	case hasCustomTiming:
		q.Override = OverrideCustomTiming
		q.Total = q.CustomTiming
	case hasVIP:
		q.Override = OverrideVIP
		q.Total = q.VIP
	default:
		q.Total = q.BasePrice + q.AddOnsTotal
	}

	q.Total = wholeUnits(q.Total)
	return q
}

func basePrice(tier catalog.PricingTier, participants float64) float64 {
	amount, ok := ParseAmount(tier.Price)
	if !ok {
		return 0
	}

	switch {
	case IsPerPerson(tier.Price):
		return amount * participants
	case containsAny(tier.Name, groupPackageMarkers) || containsAny(tier.Price, groupPackageMarkers):
		if IsPerPerson(tier.Price) {
			return amount * participants
		}
		return amount
	case containsAny(tier.Price, totalMarkers):
		return amount
	default:
		return amount * participants
	}
}

// SAR prices on the site have no minor unit
func wholeUnits(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v)
}
