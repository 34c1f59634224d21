package bookings

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"tourly/internal/catalog"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status can no longer change")
)

// DateLayout is the calendar date format used for the trip date
const DateLayout = "2006-01-02"

// Booking is a submitted trip reservation
type Booking struct {
	ID           string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string                      `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string                      `gorm:"type:varchar(50);not null" json:"phone"`
	Email        string                      `gorm:"type:varchar(255);not null;index" json:"email"`
	Age          string                      `gorm:"type:varchar(20)" json:"age"`
	Date         string                      `gorm:"type:varchar(10);not null;index" json:"date"`
	PackageName  string                      `gorm:"type:varchar(255);not null" json:"packageName"`
	Participants int                         `gorm:"not null" json:"participants"`
	AddOns       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"addOns"`
	TripTitle    string                      `gorm:"type:varchar(255);not null;index" json:"tripTitle"`
	Language     catalog.Language            `gorm:"type:varchar(2);not null" json:"language"`
	TotalPrice   float64                     `gorm:"not null" json:"totalPrice"`
	Status       Status                      `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt    time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt    *time.Time                  `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// TripDate parses the calendar date; the zero time is returned for bad input
func (b *Booking) TripDate() time.Time {
	t, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NotificationData is the payload mailed to the site admin
func (b *Booking) NotificationData() map[string]interface{} {
	addOns := []string(b.AddOns)
	if addOns == nil {
		addOns = []string{}
	}
	return map[string]interface{}{
		"bookingId":    b.ID,
		"name":         b.Name,
		"email":        b.Email,
		"phone":        b.Phone,
		"date":         b.Date,
		"packageName":  b.PackageName,
		"participants": b.Participants,
		"addOns":       addOns,
		"tripTitle":    b.TripTitle,
		"language":     string(b.Language),
		"totalPrice":   b.TotalPrice,
		"status":       string(b.Status),
	}
}
