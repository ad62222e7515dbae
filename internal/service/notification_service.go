package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/pkg/jobs"
)

const contactNotificationJob = "contact.notify"

type mailSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type notificationMetrics interface {
	RecordNotification(outcome string)
}

// NotificationConfig tunes the admin mail dispatcher.
type NotificationConfig struct {
	Recipient  string
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// NotificationService mails the admin about new contact messages from a background queue.
// Delivery failures are retried by the queue and then logged; callers never see them.
type NotificationService struct {
	sender     mailSender
	metrics    notificationMetrics
	recipient  string
	maxRetries int
	queue      *jobs.Queue
	logger     *zap.Logger
}

// NewNotificationService builds the dispatcher. A nil sender makes every notification a no-op.
func NewNotificationService(sender mailSender, metrics notificationMetrics, cfg NotificationConfig, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	s := &NotificationService{
		sender:     sender,
		metrics:    metrics,
		recipient:  cfg.Recipient,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
	s.queue = jobs.NewQueue("notifications", s.deliver, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return s
}

// Enabled reports whether notifications will actually be sent.
func (s *NotificationService) Enabled() bool {
	return s != nil && s.sender != nil && s.recipient != ""
}

// Start launches the queue workers.
func (s *NotificationService) Start(ctx context.Context) {
	if s.Enabled() {
		s.queue.Start(ctx)
	}
}

// Stop drains workers. Buffered notifications are dropped.
func (s *NotificationService) Stop() {
	if s != nil {
		s.queue.Stop()
	}
}

// ContactSubmitted enqueues an admin notification. It never blocks.
func (s *NotificationService) ContactSubmitted(contact models.Contact) error {
	if !s.Enabled() {
		return nil
	}
	return s.queue.Enqueue(jobs.Job{Type: contactNotificationJob, Payload: contact})
}

func (s *NotificationService) deliver(ctx context.Context, job jobs.Job) error {
	contact, ok := job.Payload.(models.Contact)
	if !ok {
		s.logger.Error("unexpected notification payload", zap.String("job_id", job.ID))
		return nil
	}

	subject, text, body := contactEmail(contact)
	if err := s.sender.Send(ctx, s.recipient, subject, text, body); err != nil {
		if job.Attempt >= s.maxRetries {
			s.record("failed")
		}
		return fmt.Errorf("send contact notification: %w", err)
	}
	s.record("sent")
	s.logger.Info("contact notification sent", zap.String("contact_id", contact.ID))
	return nil
}

func (s *NotificationService) record(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordNotification(outcome)
	}
}

func contactEmail(c models.Contact) (subject, text, body string) {
	subject = "New Contact Form Submission: " + c.Subject

	phone := c.Phone
	if phone == "" {
		phone = "-"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s\n", c.Name, c.Email, phone, c.Subject, c.Message)
	text = sb.String()

	body = fmt.Sprintf(
		"<h2>New contact message</h2><p><strong>Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Phone:</strong> %s<br><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(c.Name),
		html.EscapeString(c.Email),
		html.EscapeString(phone),
		html.EscapeString(c.Subject),
		strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>"),
	)
	return subject, text, body
}
