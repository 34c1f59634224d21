package catalog

type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// IsValid checks if the language is one the site is published in
func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageAR
}

// ParseLanguage falls back to English for anything unknown
func ParseLanguage(s string) Language {
	if l := Language(s); l.IsValid() {
		return l
	}
	return LanguageEN
}

type TourType string

const (
	TourTypePrivate TourType = "private"
	TourTypeGroup   TourType = "group"
)

func (t TourType) IsValid() bool {
	return t == TourTypePrivate || t == TourTypeGroup
}

// PricingTier is one bookable package of a trip. Price is the text shown on
// the site, e.g. "100 SAR per person" or "3500 SAR Total".
type PricingTier struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	TourType    TourType `json:"tourType,omitempty"` // empty means offered for both tour types
}

// AddOn is an optional extra priced per person unless its name says otherwise
type AddOn struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Trip is a catalog entry in a single language
type Trip struct {
	ID              int           `json:"id"`
	Language        Language      `json:"language"`
	Title           string        `json:"title"`
	Location        string        `json:"location"`
	Duration        string        `json:"duration"`
	FullDescription string        `json:"fullDescription"`
	Pricing         []PricingTier `json:"pricing"`
	AddOns          []AddOn       `json:"addOns"`
}

// Tier finds a pricing tier by exact name
func (t *Trip) Tier(name string) (PricingTier, bool) {
	for _, tier := range t.Pricing {
		if tier.Name == name {
			return tier, true
		}
	}
	return PricingTier{}, false
}

// AddOn finds an add-on by exact name
func (t *Trip) AddOn(name string) (AddOn, bool) {
	for _, addOn := range t.AddOns {
		if addOn.Name == name {
			return addOn, true
		}
	}
	return AddOn{}, false
}

// TiersFor returns the tiers offered for a tour type, in catalog order.
// An empty tour type returns every tier.
func (t *Trip) TiersFor(tourType TourType) []PricingTier {
	if tourType == "" {
		return append([]PricingTier(nil), t.Pricing...)
	}
	tiers := make([]PricingTier, 0, len(t.Pricing))
	for _, tier := range t.Pricing {
		if tier.TourType == "" || tier.TourType == tourType {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// TripSummary is the list view of a trip
type TripSummary struct {
	ID       int      `json:"id"`
	Language Language `json:"language"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Duration string   `json:"duration"`
	FromText string   `json:"fromPrice"`
}

func (t *Trip) Summary() TripSummary {
	s := TripSummary{
		ID:       t.ID,
		Language: t.Language,
		Title:    t.Title,
		Location: t.Location,
		Duration: t.Duration,
	}
	if len(t.Pricing) > 0 {
		s.FromText = t.Pricing[0].Price
	}
	return s
}
