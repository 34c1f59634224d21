package notifications

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeBookingCreated       NotificationType = "booking.created"
	NotificationTypeBookingStatusChanged NotificationType = "booking.status_changed"
	NotificationTypeContactReceived      NotificationType = "contact.received"
	NotificationTypeDailyDigest          NotificationType = "digest.daily"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeBookingCreated, NotificationTypeBookingStatusChanged,
		NotificationTypeContactReceived, NotificationTypeDailyDigest:
		return true
	}
	return false
}

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "PENDING"
	NotificationStatusQueued   NotificationStatus = "QUEUED"
	NotificationStatusSending  NotificationStatus = "SENDING"
	NotificationStatusSent     NotificationStatus = "SENT"
	NotificationStatusFailed   NotificationStatus = "FAILED"
	NotificationStatusRetrying NotificationStatus = "RETRYING"
	NotificationStatusExpired  NotificationStatus = "EXPIRED"
)

// Notification is one message for the site admin mailbox. ReferenceID is the
// booking or contact id it is about and doubles as the Kafka partition key.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	Type        NotificationType `json:"type"`
	ReferenceID string           `json:"reference_id,omitempty"`
	Language    string           `json:"language,omitempty"`

	RecipientEmail string `json:"recipient_email,omitempty"`
	Subject        string `json:"subject"`

	Data map[string]interface{} `json:"data"`

	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	LastError  *string            `json:"last_error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
}

type NotificationBuilder struct {
	notification *Notification
}

func NewNotificationBuilder() *NotificationBuilder {
	now := time.Now()
	return &NotificationBuilder{
		notification: &Notification{
			ID:         uuid.New(),
			Status:     NotificationStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
			MaxRetries: 3,
			Data:       make(map[string]interface{}),
		},
	}
}

func (nb *NotificationBuilder) WithType(notType NotificationType) *NotificationBuilder {
	nb.notification.Type = notType
	return nb
}

func (nb *NotificationBuilder) WithReference(id string) *NotificationBuilder {
	nb.notification.ReferenceID = id
	return nb
}

func (nb *NotificationBuilder) WithLanguage(lang string) *NotificationBuilder {
	nb.notification.Language = lang
	return nb
}

func (nb *NotificationBuilder) WithRecipient(email string) *NotificationBuilder {
	nb.notification.RecipientEmail = email
	return nb
}

func (nb *NotificationBuilder) WithSubject(subject string) *NotificationBuilder {
	nb.notification.Subject = subject
	return nb
}

func (nb *NotificationBuilder) WithData(data map[string]interface{}) *NotificationBuilder {
	for k, v := range data {
		nb.notification.Data[k] = v
	}
	return nb
}

func (nb *NotificationBuilder) WithExpiration(expiresAt time.Time) *NotificationBuilder {
	nb.notification.ExpiresAt = &expiresAt
	return nb
}

// Build fills in a subject from the type and data when none was given
func (nb *NotificationBuilder) Build() *Notification {
	if nb.notification.Subject == "" {
		nb.notification.Subject = GenerateSubject(nb.notification.Type, nb.notification.Data)
	}
	return nb.notification
}

// GenerateSubject produces the admin mail subject line
func GenerateSubject(notType NotificationType, data map[string]interface{}) string {
	switch notType {
	case NotificationTypeBookingCreated:
		if trip, ok := data["tripTitle"]; ok {
			return fmt.Sprintf("New booking: %v", trip)
		}
		return "New booking received"
	case NotificationTypeBookingStatusChanged:
		if status, ok := data["status"]; ok {
			return fmt.Sprintf("Booking %v", status)
		}
		return "Booking status changed"
	case NotificationTypeContactReceived:
		if name, ok := data["name"]; ok {
			return fmt.Sprintf("New message from %v", name)
		}
		return "New contact message"
	case NotificationTypeDailyDigest:
		return "Daily bookings digest"
	default:
		return "Notification from Tourly"
	}
}

func (n *Notification) GetPartitionKey() string {
	if n.ReferenceID != "" {
		return n.ReferenceID
	}
	return n.ID.String()
}

func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func (n *Notification) IsExpired() bool {
	return n.ExpiresAt != nil && time.Now().After(*n.ExpiresAt)
}

func (n *Notification) ShouldRetry() bool {
	return n.RetryCount < n.MaxRetries &&
		n.Status == NotificationStatusFailed &&
		!n.IsExpired()
}

func (n *Notification) MarkSent() {
	now := time.Now()
	n.Status = NotificationStatusSent
	n.SentAt = &now
	n.UpdatedAt = now
}

func (n *Notification) MarkFailed(err error) {
	n.Status = NotificationStatusFailed
	n.UpdatedAt = time.Now()
	errorStr := err.Error()
	n.LastError = &errorStr
}

func (n *Notification) IncrementRetry() {
	n.RetryCount++
	n.UpdatedAt = time.Now()
	if n.ShouldRetry() {
		n.Status = NotificationStatusRetrying
	} else {
		n.Status = NotificationStatusExpired
	}
}
