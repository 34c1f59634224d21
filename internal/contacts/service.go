package contacts

import (
	"context"
	"log/slog"
	"strings"

	"tourly/internal/catalog"
	"tourly/internal/notifications"
	"tourly/internal/shared/constants"
	"tourly/pkg/cache"
	"tourly/pkg/logger"
)

type Service interface {
	Create(ctx context.Context, req CreateContactRequest) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	cache     cache.Service
	publisher notifications.Publisher
	log       *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, publisher notifications.Publisher) Service {
	return &service{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateContactRequest) (*Contact, error) {
	contact := &Contact{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Message:  strings.TrimSpace(req.Message),
		Language: catalog.ParseLanguage(req.Language),
		Status:   StatusNew,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.LogContactReceived(ctx, contact.ID, string(contact.Language))

	notifications.PublishAsync(s.publisher, notifications.NewNotificationBuilder().
		WithType(notifications.NotificationTypeContactReceived).
		WithReference(contact.ID).
		WithLanguage(string(contact.Language)).
		WithData(contact.NotificationData()).
		Build())

	return contact, nil
}

func (s *service) List(ctx context.Context) ([]Contact, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}

	var contacts []Contact
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_CONTACTS_LIST, constants.TTL_CONTACTS_LIST, func() (interface{}, error) {
		return s.repo.List(ctx)
	}, &contacts)
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "Contact Deleted", slog.String("contact_id", id))
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.GetContactInvalidationKeys()...); err != nil {
		s.log.WarnContext(ctx, "Failed to invalidate contacts cache", slog.Any("error", err))
	}
}
