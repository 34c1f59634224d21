package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the store boundary for the contacts collection
type Repository interface {
	Create(ctx context.Context, contact *Contact) error
	// List returns every contact, newest first
	List(ctx context.Context) ([]Contact, error)
	// Delete reports whether a contact with the id existed
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, contact *Contact) error {
	contact.ID = uuid.NewString()
	if contact.Status == "" {
		contact.Status = StatusNew
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Contact{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
