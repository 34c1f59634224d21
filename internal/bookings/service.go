package bookings

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"tourly/internal/catalog"
	"tourly/internal/notifications"
	"tourly/internal/pricing"
	"tourly/internal/shared/constants"
	"tourly/pkg/cache"
	"tourly/pkg/logger"
)

// Service interface defines the contract for booking business logic
type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	cache     cache.Service
	publisher notifications.Publisher
	trips     *catalog.Catalog
	log       *logger.Logger
}

// NewService wires the booking store. cacheService, publisher and trips may be
// nil; without a catalog submitted totals are not checked.
func NewService(repo Repository, cacheService cache.Service, publisher notifications.Publisher, trips *catalog.Catalog) Service {
	return &service{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		trips:     trips,
		log:       logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	booking := &Booking{
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Age:          strings.TrimSpace(req.Age),
		Date:         req.Date,
		PackageName:  req.PackageName,
		Participants: req.Participants,
		AddOns:       append([]string{}, req.AddOns...),
		TripTitle:    req.TripTitle,
		Language:     catalog.ParseLanguage(req.Language),
		Status:       StatusPending,
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}

	// the submitted total is stored as is; a mismatch only gets logged
	if expected, ok := s.expectedTotal(booking); ok && math.Abs(expected-booking.TotalPrice) >= 0.01 {
		s.log.WarnContext(ctx, "Submitted total differs from catalog price",
			slog.String("trip", booking.TripTitle),
			slog.String("package", booking.PackageName),
			slog.Float64("submitted", booking.TotalPrice),
			slog.Float64("expected", expected),
		)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.LogBookingCreated(ctx, booking.ID, booking.TripTitle, booking.TotalPrice)

	notifications.PublishAsync(s.publisher, notifications.NewNotificationBuilder().
		WithType(notifications.NotificationTypeBookingCreated).
		WithReference(booking.ID).
		WithLanguage(string(booking.Language)).
		WithData(booking.NotificationData()).
		Build())

	return booking, nil
}

// expectedTotal reprices a booking against the catalog. Trips the catalog no
// longer lists cannot be checked.
func (s *service) expectedTotal(b *Booking) (float64, bool) {
	if s.trips == nil {
		return 0, false
	}
	trip, err := s.trips.ByTitle(b.TripTitle)
	if err != nil {
		return 0, false
	}
	return pricing.Calculate(trip, pricing.Selection{
		Package:      b.PackageName,
		Participants: b.Participants,
		AddOns:       []string(b.AddOns),
	}), true
}

func (s *service) List(ctx context.Context) ([]Booking, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}

	var bookings []Booking
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_BOOKINGS_LIST, constants.TTL_BOOKINGS_LIST, func() (interface{}, error) {
		return s.repo.List(ctx)
	}, &bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves a pending booking to confirmed or cancelled. Setting the
// status a booking already has is a no-op.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		return booking, nil
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, booking.Status, status)
	}

	matched, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !matched {
		// deleted between the read and the write
		return nil, ErrBookingNotFound
	}

	previous := booking.Status
	now := time.Now().UTC()
	booking.Status = status
	booking.UpdatedAt = &now
	s.invalidate(ctx)
	s.log.LogBookingStatusChanged(ctx, id, previous.String(), status.String())

	data := booking.NotificationData()
	data["from"] = previous.String()
	notifications.PublishAsync(s.publisher, notifications.NewNotificationBuilder().
		WithType(notifications.NotificationTypeBookingStatusChanged).
		WithReference(booking.ID).
		WithLanguage(string(booking.Language)).
		WithData(data).
		Build())

	return booking, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}

	s.invalidate(ctx)
	s.log.LogBookingDeleted(ctx, id)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.GetBookingInvalidationKeys()...); err != nil {
		s.log.WarnContext(ctx, "Failed to invalidate bookings cache", slog.Any("error", err))
	}
}
