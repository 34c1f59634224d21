package trips

import (
	"tourly/internal/catalog"
	"tourly/internal/pricing"
)

type PackagesResponse struct {
	TripID   int                   `json:"tripId"`
	TourType catalog.TourType      `json:"tourType,omitempty"`
	Packages []catalog.PricingTier `json:"packages"`
}

type QuoteResponse struct {
	TripID   int           `json:"tripId"`
	Currency string        `json:"currency"`
	Quote    pricing.Quote `json:"quote"`
}

type ToggleAddOnResponse struct {
	AddOns []string `json:"addOns"`
}
