package admin

import (
	"context"
	"fmt"
	"time"

	"tourly/internal/bookings"
	"tourly/internal/contacts"
	"tourly/internal/dashboard"
	"tourly/internal/shared/constants"
	"tourly/pkg/cache"
)

// Service backs the admin dashboard: filtered booking lists, the contact
// inbox, aggregates and the PDF export
type Service interface {
	ListBookings(ctx context.Context, filter dashboard.Filter, sort dashboard.Sort) ([]bookings.Booking, error)
	ListContacts(ctx context.Context) ([]contacts.Contact, error)
	Stats(ctx context.Context) (*dashboard.Summary, error)
	ExportBookingsPDF(ctx context.Context, filter dashboard.Filter, sort dashboard.Sort) ([]byte, string, error)
}

type service struct {
	bookings bookings.Service
	contacts contacts.Service
	cache    cache.Service
	exporter *Exporter
}

func NewService(bookingService bookings.Service, contactService contacts.Service, cacheService cache.Service, exporter *Exporter) Service {
	if exporter == nil {
		exporter = NewExporter("")
	}
	return &service{
		bookings: bookingService,
		contacts: contactService,
		cache:    cacheService,
		exporter: exporter,
	}
}

func (s *service) ListBookings(ctx context.Context, filter dashboard.Filter, sort dashboard.Sort) ([]bookings.Booking, error) {
	list, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.Apply(list, filter, sort), nil
}

func (s *service) ListContacts(ctx context.Context) ([]contacts.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *service) Stats(ctx context.Context) (*dashboard.Summary, error) {
	if s.cache == nil {
		return s.summarize(ctx)
	}

	var summary dashboard.Summary
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_BOOKINGS_STATS, constants.TTL_DYNAMIC_MEDIUM, func() (interface{}, error) {
		return s.summarize(ctx)
	}, &summary)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *service) summarize(ctx context.Context) (*dashboard.Summary, error) {
	bookingList, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	contactList, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	summary := dashboard.Summarize(bookingList, contactList)
	return &summary, nil
}

func (s *service) ExportBookingsPDF(ctx context.Context, filter dashboard.Filter, sort dashboard.Sort) ([]byte, string, error) {
	list, err := s.ListBookings(ctx, filter, sort)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	data, err := s.exporter.BookingsPDF(list, now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render bookings pdf: %w", err)
	}
	return data, fmt.Sprintf("bookings_%s.pdf", now.Format("20060102_1504")), nil
}
