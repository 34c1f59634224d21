package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tourly/internal/shared/config"
	"tourly/pkg/logger"
)

// NotificationService owns the Kafka producer and the mail workers
type NotificationService interface {
	Publisher
	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type KafkaNotificationService struct {
	cfg      *config.Config
	producer NotificationProducer
	consumer NotificationConsumer
	log      *logger.Logger

	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewService wires the producer and consumer from configuration. Without SMTP
// settings the workers log notifications instead of mailing them.
func NewService(cfg *config.Config) (NotificationService, error) {
	if !cfg.Kafka.Enabled {
		return nil, fmt.Errorf("kafka notifications are disabled")
	}

	var emailService EmailService
	if cfg.Email.SMTPHost != "" {
		smtp, err := NewSMTPEmailService(&SMTPConfig{
			Host:       cfg.Email.SMTPHost,
			Port:       cfg.Email.SMTPPort,
			Username:   cfg.Email.SMTPUsername,
			Password:   cfg.Email.SMTPPassword,
			FromEmail:  cfg.Email.FromEmail,
			FromName:   cfg.Email.FromName,
			AdminEmail: cfg.Email.AdminEmail,
		})
		if err != nil {
			return nil, err
		}
		emailService = smtp
	} else {
		emailService = NewLogEmailService()
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroupID

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	return newKafkaNotificationService(cfg, producer, consumer), nil
}

func newKafkaNotificationService(cfg *config.Config, producer NotificationProducer, consumer NotificationConsumer) *KafkaNotificationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &KafkaNotificationService{
		cfg:      cfg,
		producer: producer,
		consumer: consumer,
		log:      logger.GetDefault(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *KafkaNotificationService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	if err := s.consumer.StartConsumers(s.ctx, s.cfg.Kafka.NumConsumerWorkers); err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	s.isRunning = true
	s.log.Info("Notification service started", slog.String("topic", s.cfg.Kafka.NotificationTopic))
	return nil
}

func (s *KafkaNotificationService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	s.cancel()

	if err := s.consumer.Stop(); err != nil {
		s.log.Error("Error stopping consumer", slog.Any("error", err))
	}
	if err := s.producer.Close(); err != nil {
		s.log.Error("Error closing producer", slog.Any("error", err))
	}

	s.isRunning = false
	s.log.Info("Notification service stopped")
	return nil
}

func (s *KafkaNotificationService) Publish(ctx context.Context, notification *Notification) error {
	if notification.RecipientEmail == "" {
		notification.RecipientEmail = s.cfg.Email.AdminEmail
	}
	return s.producer.Publish(ctx, notification)
}

func (s *KafkaNotificationService) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	isRunning := s.isRunning
	s.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}
	if err := s.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}
	if err := s.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}
	return nil
}

// HealthReport summarizes the notification pipeline for the status endpoint.
// Publishers without a health check, such as NoopPublisher, report "disabled".
func HealthReport(ctx context.Context, publisher Publisher) string {
	checker, ok := publisher.(interface {
		HealthCheck(ctx context.Context) error
	})
	if !ok {
		return "disabled"
	}
	if err := checker.HealthCheck(ctx); err != nil {
		return "unhealthy: " + err.Error()
	}
	return "healthy"
}

// NoopPublisher drops notifications; used when Kafka is disabled
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, notification *Notification) error {
	return nil
}

// PublishAsync hands a notification off without blocking the request. Failures
// are only logged.
func PublishAsync(publisher Publisher, notification *Notification) {
	if publisher == nil || notification == nil {
		return
	}
	go func() {
		if err := publisher.Publish(context.Background(), notification); err != nil {
			logger.GetDefault().Warn("Failed to publish notification",
				slog.String("type", string(notification.Type)),
				slog.String("reference_id", notification.ReferenceID),
				slog.Any("error", err),
			)
		}
	}()
}
