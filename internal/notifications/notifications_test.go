package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"tourly/internal/shared/config"
	"tourly/pkg/logger"
)

type fakeEmailService struct {
	mu       sync.Mutex
	failures int
	sent     []*Notification
}

func (f *fakeEmailService) SendNotification(ctx context.Context, n *Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, n)
	return nil
}

func bookingNotification() *Notification {
	return NewNotificationBuilder().
		WithType(NotificationTypeBookingCreated).
		WithReference("b-1").
		WithLanguage("ar").
		WithData(map[string]interface{}{
			"tripTitle":    "AlUla Heritage Tour",
			"packageName":  "Standard",
			"name":         "Sara",
			"email":        "sara@example.com",
			"phone":        "0500000000",
			"date":         "2025-03-01",
			"participants": 3,
			"addOns":       []string{"Photography Session"},
			"totalPrice":   750,
			"language":     "ar",
		}).
		Build()
}

func TestBuilderDefaults(t *testing.T) {
	n := bookingNotification()

	assert.Equal(t, "New booking: AlUla Heritage Tour", n.Subject)
	assert.Equal(t, "b-1", n.GetPartitionKey())
	assert.Equal(t, NotificationStatusPending, n.Status)
	assert.Equal(t, 3, n.MaxRetries)

	digest := NewNotificationBuilder().WithType(NotificationTypeDailyDigest).Build()
	assert.Equal(t, "Daily bookings digest", digest.Subject)
	assert.Equal(t, digest.ID.String(), digest.GetPartitionKey())
}

func TestRetryBookkeeping(t *testing.T) {
	n := bookingNotification()
	n.MaxRetries = 1

	n.MarkFailed(errors.New("boom"))
	require.NotNil(t, n.LastError)
	assert.True(t, n.ShouldRetry())

	n.IncrementRetry()
	assert.Equal(t, NotificationStatusExpired, n.Status)

	past := time.Now().Add(-time.Minute)
	n.ExpiresAt = &past
	assert.True(t, n.IsExpired())
}

func TestProducerPublish(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got Notification
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Type != NotificationTypeBookingCreated || got.ReferenceID != "b-1" {
			return errors.New("unexpected notification payload")
		}
		return nil
	})
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	config := DefaultKafkaProducerConfig()
	producer := NewProducerWithClient(mockProducer, config)

	n := bookingNotification()
	require.NoError(t, producer.Publish(context.Background(), n))
	assert.Equal(t, NotificationStatusQueued, n.Status)

	failed := bookingNotification()
	err := producer.Publish(context.Background(), failed)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Equal(t, NotificationStatusFailed, failed.Status)

	require.NoError(t, producer.HealthCheck(context.Background()))
	require.NoError(t, producer.Close())
}

func TestCreateHeaders(t *testing.T) {
	headers := createHeaders(bookingNotification())

	got := map[string]string{}
	for _, h := range headers {
		got[string(h.Key)] = string(h.Value)
	}
	assert.Equal(t, "booking.created", got["notification_type"])
	assert.Equal(t, "b-1", got["reference_id"])
	assert.Equal(t, "ar", got["language"])
}

func TestProcessMessage(t *testing.T) {
	payload, err := bookingNotification().ToJSON()
	require.NoError(t, err)

	t.Run("delivers after a retry", func(t *testing.T) {
		mailer := &fakeEmailService{failures: 1}
		h := &ConsumerGroupHandler{emailService: mailer, maxRetries: 2, backoff: time.Millisecond, log: logger.GetDefault()}

		require.NoError(t, h.processMessage(context.Background(), &sarama.ConsumerMessage{Value: payload}))
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "b-1", mailer.sent[0].ReferenceID)
		assert.Equal(t, NotificationStatusSent, mailer.sent[0].Status)
	})

	t.Run("gives up", func(t *testing.T) {
		mailer := &fakeEmailService{failures: 5}
		h := &ConsumerGroupHandler{emailService: mailer, maxRetries: 1, backoff: time.Millisecond, log: logger.GetDefault()}

		err := h.processMessage(context.Background(), &sarama.ConsumerMessage{Value: payload})
		assert.Error(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("bad payload", func(t *testing.T) {
		h := &ConsumerGroupHandler{emailService: &fakeEmailService{}, log: logger.GetDefault()}
		assert.Error(t, h.processMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")}))
		assert.Error(t, h.processMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"type":"other"}`)}))
	})

	t.Run("expired is skipped", func(t *testing.T) {
		mailer := &fakeEmailService{}
		n := bookingNotification()
		n.ExpiresAt = func() *time.Time { ts := time.Now().Add(-time.Hour); return &ts }()
		expired, err := n.ToJSON()
		require.NoError(t, err)

		h := &ConsumerGroupHandler{emailService: mailer, log: logger.GetDefault()}
		require.NoError(t, h.processMessage(context.Background(), &sarama.ConsumerMessage{Value: expired}))
		assert.Empty(t, mailer.sent)
	})
}

func TestRenderNotification(t *testing.T) {
	html, text, err := RenderNotification(bookingNotification())
	require.NoError(t, err)
	assert.Contains(t, html, "AlUla Heritage Tour")
	assert.Contains(t, html, "Photography Session")
	assert.Contains(t, text, "Total: 750 SAR")

	contact := NewNotificationBuilder().
		WithType(NotificationTypeContactReceived).
		WithData(map[string]interface{}{"name": "Omar", "email": "o@example.com", "message": "<b>hi</b>", "language": "en"}).
		Build()
	html, _, err = RenderNotification(contact)
	require.NoError(t, err)
	assert.NotContains(t, html, "<b>hi</b>")
	assert.Equal(t, "New message from Omar", contact.Subject)

	_, _, err = RenderNotification(&Notification{Type: "unknown"})
	assert.Error(t, err)
}

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

func TestSMTPEmailService(t *testing.T) {
	_, err := NewSMTPEmailService(&SMTPConfig{Host: "smtp.example.com", Port: 587})
	assert.Error(t, err)

	sender := &fakeSender{}
	svc := newEmailServiceWithSender(&SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		FromEmail:  "noreply@tourly.sa",
		FromName:   "Tourly",
		AdminEmail: "admin@tourly.sa",
	}, sender)

	require.NoError(t, svc.SendNotification(context.Background(), bookingNotification()))
	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"admin@tourly.sa"}, sender.messages[0].GetHeader("To"))
	assert.Equal(t, []string{"New booking: AlUla Heritage Tour"}, sender.messages[0].GetHeader("Subject"))

	sender.err = errors.New("connection refused")
	assert.Error(t, svc.SendNotification(context.Background(), bookingNotification()))
}

type recordingPublisher struct {
	ch chan *Notification
}

func (r *recordingPublisher) Publish(ctx context.Context, n *Notification) error {
	r.ch <- n
	return errors.New("broker down")
}

func TestPublishAsync(t *testing.T) {
	PublishAsync(nil, bookingNotification())
	PublishAsync(NoopPublisher{}, nil)

	rec := &recordingPublisher{ch: make(chan *Notification, 1)}
	PublishAsync(rec, bookingNotification())

	select {
	case n := <-rec.ch:
		assert.Equal(t, NotificationTypeBookingCreated, n.Type)
	case <-time.After(time.Second):
		t.Fatal("notification was not published")
	}
}

type fakeConsumer struct {
	healthErr error
}

func (f *fakeConsumer) StartConsumers(ctx context.Context, numWorkers int) error { return nil }
func (f *fakeConsumer) Stop() error                                              { return nil }
func (f *fakeConsumer) HealthCheck(ctx context.Context) error                    { return f.healthErr }

func TestHealthReport(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "disabled", HealthReport(ctx, nil))
	assert.Equal(t, "disabled", HealthReport(ctx, NoopPublisher{}))

	cfg := &config.Config{Kafka: config.KafkaConfig{NotificationTopic: "tourly-notifications", NumConsumerWorkers: 1}}
	consumer := &fakeConsumer{}
	producer := NewProducerWithClient(mocks.NewSyncProducer(t, nil), DefaultKafkaProducerConfig())
	svc := newKafkaNotificationService(cfg, producer, consumer)

	assert.Equal(t, "unhealthy: notification service is not running", HealthReport(ctx, svc))

	require.NoError(t, svc.Start(ctx))
	assert.Equal(t, "healthy", HealthReport(ctx, svc))

	consumer.healthErr = errors.New("email service not configured")
	assert.Contains(t, HealthReport(ctx, svc), "consumer health check failed")

	require.NoError(t, svc.Stop())
}
