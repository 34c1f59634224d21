package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourly/internal/catalog"
)

func trip(t *testing.T, lang catalog.Language, id int) *catalog.Trip {
	t.Helper()
	tr, err := catalog.Default().ByID(lang, id)
	require.NoError(t, err)
	return tr
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100 SAR per person", 100, true},
		{"3,700 SAR", 3700, true},
		{"SAR 1200 Total", 1200, true},
		{"12.5 SAR", 12.5, true},
		{"٣٧٠٠ ريال", 3700, true},
		{"٣٬٧٠٠ ريال", 3700, true},
		{"١٥٠٫٥ ريال للشخص", 150.5, true},
		{"150 - 200 SAR", 150, true},
		{"Free", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAddOn(t *testing.T) {
	assert.Equal(t, AddOnMeal, ClassifyAddOn("Traditional Lunch"))
	assert.Equal(t, AddOnMeal, ClassifyAddOn("عشاء الغروب"))
	assert.Equal(t, AddOnCustomTiming, ClassifyAddOn("Custom Timing - Individual"))
	assert.Equal(t, AddOnCustomTimingGroup, ClassifyAddOn("Custom Timing - Group"))
	assert.Equal(t, AddOnCustomTimingGroup, ClassifyAddOn("توقيت مخصص - مجموعة"))
	assert.Equal(t, AddOnVIP, ClassifyAddOn("VIP Experience"))
	assert.Equal(t, AddOnVIP, ClassifyAddOn("تجربة كبار الشخصيات"))
	assert.Equal(t, AddOnRegular, ClassifyAddOn("Photography Session"))
}

func TestCalculatePerPersonTier(t *testing.T) {
	for _, lang := range []catalog.Language{catalog.LanguageEN, catalog.LanguageAR} {
		tr := trip(t, lang, 1)
		standard := tr.Pricing[0]
		unit, ok := ParseAmount(standard.Price)
		require.True(t, ok)

		for participants := 1; participants <= 12; participants++ {
			got := Calculate(tr, Selection{Package: standard.Name, Participants: participants})
			assert.Equal(t, unit*float64(participants), got, "%s participants=%d", lang, participants)
		}
	}
}

func TestCalculateScenarios(t *testing.T) {
	en := trip(t, catalog.LanguageEN, 1)
	ar := trip(t, catalog.LanguageAR, 1)

	tests := []struct {
		name string
		trip *catalog.Trip
		sel  Selection
		want float64
	}{
		{
			name: "standard for three",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 3},
			want: 300,
		},
		{
			name: "group custom timing ignores participants",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 3, AddOns: []string{"Custom Timing - Group"}},
			want: 3700,
		},
		{
			name: "group custom timing with a large party",
			trip: en,
			sel:  Selection{Package: "Premium", Participants: 14, AddOns: []string{"Photography Session", "Custom Timing - Group"}},
			want: 3700,
		},
		{
			name: "individual custom timing is per person",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 2, AddOns: []string{"Custom Timing - Individual"}},
			want: 1000,
		},
		{
			name: "both custom timings add up",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 2, AddOns: []string{"Custom Timing - Individual", "Custom Timing - Group"}},
			want: 4700,
		},
		{
			name: "custom timing wins over vip",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 2, AddOns: []string{"VIP Experience", "Custom Timing - Group"}},
			want: 3700,
		},
		{
			name: "vip replaces base and add-ons",
			trip: en,
			sel:  Selection{Package: "Premium", Participants: 2, AddOns: []string{"VIP Experience", "Photography Session"}},
			want: 1800,
		},
		{
			name: "regular add-on per person",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 2, AddOns: []string{"Photography Session"}},
			want: 500,
		},
		{
			name: "group package total is fixed",
			trip: en,
			sel:  Selection{Package: "Group Package", Participants: 10},
			want: 3500,
		},
		{
			name: "arabic group package total is fixed",
			trip: ar,
			sel:  Selection{Package: "باقة المجموعة", Participants: 10},
			want: 3500,
		},
		{
			name: "arabic group custom timing",
			trip: ar,
			sel:  Selection{Package: "الباقة العادية", Participants: 4, AddOns: []string{"توقيت مخصص - مجموعة"}},
			want: 3700,
		},
		{
			name: "unknown package contributes nothing",
			trip: en,
			sel:  Selection{Package: "Deluxe", Participants: 2, AddOns: []string{"Photography Session"}},
			want: 300,
		},
		{
			name: "unknown add-on is ignored",
			trip: en,
			sel:  Selection{Package: "Standard", Participants: 1, AddOns: []string{"Helicopter"}},
			want: 100,
		},
		{
			name: "no package",
			trip: en,
			sel:  Selection{Participants: 3, AddOns: []string{"VIP Experience"}},
			want: 0,
		},
		{
			name: "no participants",
			trip: en,
			sel:  Selection{Package: "Standard"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.trip, tt.sel))
		})
	}
}

func TestCalculateTierTextRules(t *testing.T) {
	custom := &catalog.Trip{
		ID: 9,
		Pricing: []catalog.PricingTier{
			{Name: "Group Package", Price: "150 SAR per person"},
			{Name: "Family", Price: "1600 SAR Total"},
			{Name: "Dive", Price: "450 SAR"},
			{Name: "Mystery", Price: "ask us"},
			{Name: "Half", Price: "99.6 SAR per person"},
		},
	}

	assert.Equal(t, float64(1500), Calculate(custom, Selection{Package: "Group Package", Participants: 10}))
	assert.Equal(t, float64(1600), Calculate(custom, Selection{Package: "Family", Participants: 5}))
	assert.Equal(t, float64(900), Calculate(custom, Selection{Package: "Dive", Participants: 2}))
	assert.Equal(t, float64(0), Calculate(custom, Selection{Package: "Mystery", Participants: 2}))
	assert.Equal(t, float64(199), Calculate(custom, Selection{Package: "Half", Participants: 2}))
}

func TestMealAddOnsNeverChangeTotal(t *testing.T) {
	for _, lang := range []catalog.Language{catalog.LanguageEN, catalog.LanguageAR} {
		for _, tr := range catalog.Default().List(lang) {
			tr := tr
			var meals, others []string
			for _, a := range tr.AddOns {
				if ClassifyAddOn(a.Name) == AddOnMeal {
					meals = append(meals, a.Name)
				} else {
					others = append(others, a.Name)
				}
			}
			require.NotEmpty(t, meals, "trip %d has no meal add-on", tr.ID)

			for _, tier := range tr.Pricing {
				for _, other := range append([]string{""}, others...) {
					base := Selection{Package: tier.Name, Participants: 3}
					if other != "" {
						base.AddOns = []string{other}
					}
					withMeals := base
					withMeals.AddOns = append(append([]string(nil), base.AddOns...), meals...)

					assert.Equal(t, Calculate(&tr, base), Calculate(&tr, withMeals),
						"%s trip %d tier %q add-on %q", lang, tr.ID, tier.Name, other)
				}
			}
		}
	}
}

func TestQuoteBreakdown(t *testing.T) {
	tr := trip(t, catalog.LanguageEN, 1)

	q := QuoteFor(tr, Selection{
		Package:      "Standard",
		Participants: 2,
		AddOns:       []string{"Traditional Lunch", "Photography Session"},
	})
	assert.Equal(t, float64(200), q.BasePrice)
	assert.Equal(t, float64(300), q.AddOnsTotal)
	assert.Equal(t, []string{"Traditional Lunch"}, q.SkippedMeals)
	assert.Equal(t, OverrideNone, q.Override)
	assert.Equal(t, float64(500), q.Total)

	q = QuoteFor(tr, Selection{Package: "Standard", Participants: 2, AddOns: []string{"VIP Experience"}})
	assert.Equal(t, OverrideVIP, q.Override)
	assert.Equal(t, float64(1800), q.VIP)
	assert.Equal(t, float64(1800), q.Total)
}

func TestToggleAddOn(t *testing.T) {
	tr := trip(t, catalog.LanguageEN, 1)

	t.Run("vip clears the selection", func(t *testing.T) {
		selected := []string{"Photography Session", "Traditional Lunch"}
		got, err := ToggleAddOn(tr, selected, "VIP Experience")
		require.NoError(t, err)
		assert.Equal(t, []string{"VIP Experience"}, got)
		assert.Equal(t, []string{"Photography Session", "Traditional Lunch"}, selected)
	})

	t.Run("nothing else while vip is selected", func(t *testing.T) {
		got, err := ToggleAddOn(tr, []string{"VIP Experience"}, "Photography Session")
		assert.ErrorIs(t, err, ErrVIPExclusive)
		assert.Equal(t, []string{"VIP Experience"}, got)
	})

	t.Run("deselect vip then add", func(t *testing.T) {
		got, err := ToggleAddOn(tr, []string{"VIP Experience"}, "VIP Experience")
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = ToggleAddOn(tr, got, "Photography Session")
		require.NoError(t, err)
		assert.Equal(t, []string{"Photography Session"}, got)
	})

	t.Run("toggle removes a selected add-on", func(t *testing.T) {
		got, err := ToggleAddOn(tr, []string{"Photography Session", "Traditional Lunch"}, "Photography Session")
		require.NoError(t, err)
		assert.Equal(t, []string{"Traditional Lunch"}, got)
	})

	t.Run("unknown add-on", func(t *testing.T) {
		_, err := ToggleAddOn(tr, nil, "Helicopter")
		assert.ErrorIs(t, err, ErrUnknownAddOn)
	})

	t.Run("arabic vip", func(t *testing.T) {
		ar := trip(t, catalog.LanguageAR, 2)
		got, err := ToggleAddOn(ar, []string{"عشاء الغروب"}, "تجربة كبار الشخصيات")
		require.NoError(t, err)
		assert.Equal(t, []string{"تجربة كبار الشخصيات"}, got)
	})
}

func TestDraftValidate(t *testing.T) {
	tr := trip(t, catalog.LanguageEN, 1)
	valid := Draft{
		Name:         "Sara",
		TourType:     catalog.TourTypePrivate,
		Package:      "Premium",
		Participants: 2,
		AddOns:       []string{"Photography Session"},
	}
	require.NoError(t, valid.Validate(tr))

	d := valid
	d.TourType = catalog.TourTypeGroup
	assert.ErrorIs(t, d.Validate(tr), ErrUnknownPackage)

	d = valid
	d.TourType = "solo"
	assert.ErrorIs(t, d.Validate(tr), ErrInvalidTourType)

	d = valid
	d.Participants = 0
	assert.ErrorIs(t, d.Validate(tr), ErrInvalidParticipants)

	d = valid
	d.AddOns = []string{"Helicopter"}
	assert.ErrorIs(t, d.Validate(tr), ErrUnknownAddOn)

	d = valid
	d.AddOns = []string{"Photography Session", "Photography Session"}
	assert.ErrorIs(t, d.Validate(tr), ErrDuplicateAddOn)

	d = valid
	d.TourType = ""
	d.Package = "Group Package"
	assert.NoError(t, d.Validate(tr))
}
