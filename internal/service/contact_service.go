package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/validation"
)

type contactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type contactNotifier interface {
	ContactSubmitted(contact models.Contact) error
}

type contactExporter interface {
	Contacts(contacts []models.Contact, format string) (*models.ExportFile, error)
}

// ContactService handles contact form submissions and their admin inbox.
type ContactService struct {
	repo      contactRepository
	notifier  contactNotifier
	exporter  contactExporter
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewContactService constructs a ContactService. notifier and exporter may be nil.
func NewContactService(repo contactRepository, notifier contactNotifier, exporter contactExporter, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{repo: repo, notifier: notifier, exporter: exporter, validator: validate, logger: logger, now: time.Now}
}

// Submit stores a message as Unread and queues the admin notification.
// Notification problems are logged and never fail the submission.
func (s *ContactService) Submit(ctx context.Context, req models.SubmitContactRequest) (*models.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid contact payload")
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusUnread,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, storeError(err, "contact", "create")
	}

	if s.notifier != nil {
		if err := s.notifier.ContactSubmitted(*contact); err != nil {
			s.logger.Warn("contact notification not queued", zap.String("contact_id", contact.ID), zap.Error(err))
		}
	}
	return contact, nil
}

// List returns messages newest first.
func (s *ContactService) List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	if filter.Status != "" && filter.Status != models.ContactStatusRead && filter.Status != models.ContactStatusUnread {
		err := appErrors.Clone(appErrors.ErrValidation, "status must be one of: Read, Unread")
		err.Details = map[string]string{"status": "must be one of: Read, Unread"}
		return nil, err
	}
	contacts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "contacts", "list")
	}
	return contacts, nil
}

// Get returns one message.
func (s *ContactService) Get(ctx context.Context, id string) (*models.Contact, error) {
	if err := checkID(id, "contact"); err != nil {
		return nil, err
	}
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "contact", "load")
	}
	return contact, nil
}

// UpdateStatus marks a message Read or Unread. An empty status keeps the stored one.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, req models.UpdateContactStatusRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid status payload")
	}
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == "" {
		return contact, nil
	}

	now := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, contact.ID, req.Status, now); err != nil {
		return nil, storeError(err, "contact", "update")
	}
	contact.Status = req.Status
	contact.UpdatedAt = now
	return contact, nil
}

// Delete removes a message permanently.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "contact"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "contact", "delete")
	}
	return nil
}

// Export renders every message in the requested format.
func (s *ContactService) Export(ctx context.Context, format string) (*models.ExportFile, error) {
	if s.exporter == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "export not configured")
	}
	contacts, err := s.repo.List(ctx, models.ContactFilter{})
	if err != nil {
		return nil, storeError(err, "contacts", "list")
	}
	return s.exporter.Contacts(contacts, format)
}
