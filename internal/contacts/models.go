package contacts

import (
	"errors"
	"time"

	"tourly/internal/catalog"
)

var ErrContactNotFound = errors.New("contact not found")

type Status string

const (
	StatusNew       Status = "new"
	StatusResponded Status = "responded"
)

func AllStatuses() []Status {
	return []Status{StatusNew, StatusResponded}
}

// Contact is a message sent through the site's contact form
type Contact struct {
	ID        string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string           `gorm:"type:varchar(255);not null" json:"name"`
	Email     string           `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string           `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Language  catalog.Language `gorm:"type:varchar(2);not null" json:"language"`
	Status    Status           `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time        `gorm:"index" json:"createdAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) NotificationData() map[string]interface{} {
	return map[string]interface{}{
		"contactId": c.ID,
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"message":   c.Message,
		"language":  string(c.Language),
	}
}
