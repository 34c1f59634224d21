package trips

import "tourly/internal/pricing"

// QuoteRequest is the open booking dialog; contact fields are ignored
type QuoteRequest = pricing.Draft

type ToggleAddOnRequest struct {
	Selected []string `json:"selected"`
	AddOn    string   `json:"addOn" validate:"required"`
}
