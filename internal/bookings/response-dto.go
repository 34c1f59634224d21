package bookings

import "tourly/internal/shared/utils/response"

// CreateBookingResponse carries the new id next to the envelope fields
type CreateBookingResponse struct {
	response.StandardApiResponse
	BookingID string `json:"bookingId"`
}
