package bookings

// CreateBookingRequest is the booking form payload. The total is computed by
// the site with the price calculator and stored as submitted.
type CreateBookingRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Phone        string   `json:"phone" validate:"required,max=50"`
	Email        string   `json:"email" validate:"required,email"`
	Age          string   `json:"age" validate:"max=20"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	PackageName  string   `json:"package" validate:"required"`
	Participants int      `json:"participants" validate:"required,min=1"`
	AddOns       []string `json:"addOns" validate:"dive,required"`
	TripTitle    string   `json:"tripTitle" validate:"required"`
	Language     string   `json:"language" validate:"omitempty,oneof=en ar"`
	TotalPrice   *float64 `json:"totalPrice" validate:"required,gte=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
