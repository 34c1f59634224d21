package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"tourly/internal/bookings"
	"tourly/internal/contacts"
	"tourly/internal/dashboard"
	"tourly/internal/notifications"
	"tourly/pkg/logger"
)

const DefaultSchedule = "0 7 * * *"

// Job mails the admin a daily summary of pending bookings and unanswered
// contact messages
type Job struct {
	bookings  bookings.Service
	contacts  contacts.Service
	publisher notifications.Publisher
	schedule  string
	cron      *cron.Cron
	log       *logger.Logger
}

func NewJob(bookingService bookings.Service, contactService contacts.Service, publisher notifications.Publisher, schedule string) *Job {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Job{
		bookings:  bookingService,
		contacts:  contactService,
		publisher: publisher,
		schedule:  schedule,
		log:       logger.GetDefault(),
	}
}

// Start schedules the job with a standard five-field cron spec
func (j *Job) Start() error {
	if j.cron != nil {
		return errors.New("digest job already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := j.Run(ctx); err != nil {
			j.log.Error("Daily digest failed", slog.Any("error", err))
		}
	}); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", j.schedule, err)
	}

	c.Start()
	j.cron = c
	j.log.Info("Digest scheduler started", slog.String("schedule", j.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish
func (j *Job) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	j.cron = nil
}

// Run builds and publishes one digest
func (j *Job) Run(ctx context.Context) error {
	bookingList, err := j.bookings.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}
	contactList, err := j.contacts.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	summary := dashboard.Summarize(bookingList, contactList)
	now := time.Now()
	notification := notifications.NewNotificationBuilder().
		WithType(notifications.NotificationTypeDailyDigest).
		WithReference(now.Format(bookings.DateLayout)).
		WithData(Data(summary)).
		WithExpiration(now.Add(24 * time.Hour)).
		Build()

	if j.publisher == nil {
		return nil
	}
	if err := j.publisher.Publish(ctx, notification); err != nil {
		return fmt.Errorf("failed to publish digest: %w", err)
	}

	j.log.Info("Daily digest published",
		slog.Int("pending", summary.Bookings.Pending),
		slog.Int("new_contacts", summary.Contacts.New),
	)
	return nil
}

// Data is the template payload of a digest mail
func Data(summary dashboard.Summary) map[string]interface{} {
	return map[string]interface{}{
		"pending":     summary.Bookings.Pending,
		"confirmed":   summary.Bookings.Confirmed,
		"cancelled":   summary.Bookings.Cancelled,
		"total":       summary.Bookings.Total,
		"newContacts": summary.Contacts.New,
	}
}
