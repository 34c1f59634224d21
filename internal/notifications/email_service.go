package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	texttemplate "text/template"

	"gopkg.in/gomail.v2"

	"tourly/pkg/logger"
)

// EmailService delivers notifications to a mailbox
type EmailService interface {
	SendNotification(ctx context.Context, notification *Notification) error
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	if config.AdminEmail == "" {
		return fmt.Errorf("admin email is required")
	}
	return nil
}

// mailSender is the part of gomail.Dialer we use
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config *SMTPConfig
	sender mailSender
	log    *logger.Logger
}

func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.TLSConfig = &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         config.Host,
	}

	return newEmailServiceWithSender(config, dialer), nil
}

func newEmailServiceWithSender(config *SMTPConfig, sender mailSender) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		sender: sender,
		log:    logger.GetDefault(),
	}
}

func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *Notification) error {
	to := notification.RecipientEmail
	if to == "" {
		to = s.config.AdminEmail
	}

	htmlBody, textBody, err := RenderNotification(notification)
	if err != nil {
		return fmt.Errorf("failed to generate email content: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", notification.Subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.InfoContext(ctx, "Notification email sent",
		slog.String("type", string(notification.Type)),
		slog.String("to", to),
		slog.String("reference_id", notification.ReferenceID),
	)
	return nil
}

var htmlTemplates = map[NotificationType]*template.Template{
	NotificationTypeBookingCreated: template.Must(template.New("booking_created").Parse(`
<h2>New booking</h2>
<p><strong>{{.tripTitle}}</strong> ({{.packageName}})</p>
<p>{{.name}} &middot; {{.email}} &middot; {{.phone}}</p>
<p>Date: {{.date}} &middot; Participants: {{.participants}}</p>
{{with .addOns}}<p>Add-ons: {{range $i, $a := .}}{{if $i}}, {{end}}{{$a}}{{end}}</p>{{end}}
<p>Total: <strong>{{.totalPrice}} SAR</strong></p>
<p>Language: {{.language}}</p>`)),
	NotificationTypeBookingStatusChanged: template.Must(template.New("booking_status").Parse(`
<h2>Booking {{.status}}</h2>
<p>{{.name}} &middot; <strong>{{.tripTitle}}</strong> on {{.date}}</p>
<p>Status changed from {{.from}} to <strong>{{.status}}</strong>.</p>`)),
	NotificationTypeContactReceived: template.Must(template.New("contact").Parse(`
<h2>New message from {{.name}}</h2>
<p>{{.email}}{{with .phone}} &middot; {{.}}{{end}}</p>
<blockquote>{{.message}}</blockquote>
<p>Language: {{.language}}</p>`)),
	NotificationTypeDailyDigest: template.Must(template.New("digest").Parse(`
<h2>Daily digest</h2>
<p>Pending bookings: <strong>{{.pending}}</strong></p>
<p>Confirmed: {{.confirmed}} &middot; Cancelled: {{.cancelled}}</p>
<p>New contact messages: <strong>{{.newContacts}}</strong></p>`)),
}

var textTemplates = map[NotificationType]*texttemplate.Template{
	NotificationTypeBookingCreated: texttemplate.Must(texttemplate.New("booking_created").Parse(
		"New booking: {{.tripTitle}} ({{.packageName}})\n{{.name}} / {{.email}} / {{.phone}}\nDate: {{.date}}, participants: {{.participants}}\nTotal: {{.totalPrice}} SAR\n")),
	NotificationTypeBookingStatusChanged: texttemplate.Must(texttemplate.New("booking_status").Parse(
		"Booking for {{.name}} ({{.tripTitle}}, {{.date}}) changed from {{.from}} to {{.status}}.\n")),
	NotificationTypeContactReceived: texttemplate.Must(texttemplate.New("contact").Parse(
		"New message from {{.name}} <{{.email}}>\n\n{{.message}}\n")),
	NotificationTypeDailyDigest: texttemplate.Must(texttemplate.New("digest").Parse(
		"Pending bookings: {{.pending}}\nConfirmed: {{.confirmed}}\nCancelled: {{.cancelled}}\nNew contact messages: {{.newContacts}}\n")),
}

// RenderNotification builds the html and plain text bodies
func RenderNotification(notification *Notification) (string, string, error) {
	htmlTmpl, ok := htmlTemplates[notification.Type]
	if !ok {
		return "", "", fmt.Errorf("no email template for notification type %q", notification.Type)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, notification.Data); err != nil {
		return "", "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	if err := textTemplates[notification.Type].Execute(&textBuf, notification.Data); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// LogEmailService writes notifications to the log instead of mailing them
type LogEmailService struct {
	log *logger.Logger
}

func NewLogEmailService() *LogEmailService {
	return &LogEmailService{log: logger.GetDefault()}
}

func (s *LogEmailService) SendNotification(ctx context.Context, notification *Notification) error {
	s.log.InfoContext(ctx, "Notification (mail disabled)",
		slog.String("type", string(notification.Type)),
		slog.String("subject", notification.Subject),
		slog.String("reference_id", notification.ReferenceID),
	)
	return nil
}
