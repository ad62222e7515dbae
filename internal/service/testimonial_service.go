package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/pkg/validation"
)

type testimonialRepository interface {
	List(ctx context.Context, includeInactive bool) ([]models.Testimonial, error)
	FindByID(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, item *models.Testimonial) error
	Update(ctx context.Context, item *models.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// TestimonialService implements testimonial use cases.
type TestimonialService struct {
	repo      testimonialRepository
	cache     listCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTestimonialService constructs a TestimonialService. cache may be nil.
func NewTestimonialService(repo testimonialRepository, cache listCache, validate *validator.Validate, logger *zap.Logger) *TestimonialService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestimonialService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns testimonials newest first.
func (s *TestimonialService) List(ctx context.Context, includeInactive bool) ([]models.Testimonial, error) {
	cacheable := !includeInactive && s.cache != nil
	key := testimonialCachePrefix + "list"
	if cacheable {
		var cached []models.Testimonial
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, storeError(err, "testimonials", "list")
	}
	if cacheable {
		s.cache.Set(ctx, key, items)
	}
	return items, nil
}

// Get returns one testimonial.
func (s *TestimonialService) Get(ctx context.Context, id string) (*models.Testimonial, error) {
	if err := checkID(id, "testimonial"); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "testimonial", "load")
	}
	return item, nil
}

// Create validates and stores a testimonial.
func (s *TestimonialService) Create(ctx context.Context, req models.CreateTestimonialRequest) (*models.Testimonial, error) {
	item := &models.Testimonial{
		Name:        strings.TrimSpace(req.Name),
		Image:       req.Image,
		Course:      strings.TrimSpace(req.Course),
		Rating:      req.Rating,
		Testimonial: req.Testimonial,
		IsActive:    boolOr(req.IsActive, true),
	}
	if err := s.validator.Struct(item); err != nil {
		return nil, validation.Error(err, "invalid testimonial payload")
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storeError(err, "testimonial", "create")
	}
	s.invalidate(ctx)
	return item, nil
}

// Update merges the provided fields and re-validates.
func (s *TestimonialService) Update(ctx context.Context, id string, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Course != nil {
		item.Course = strings.TrimSpace(*req.Course)
	}
	if req.Rating != nil {
		item.Rating = *req.Rating
	}
	if req.Testimonial != nil {
		item.Testimonial = *req.Testimonial
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := s.validator.Struct(item); err != nil {
		return nil, validation.Error(err, "invalid testimonial payload")
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storeError(err, "testimonial", "update")
	}
	s.invalidate(ctx)
	return item, nil
}

// Delete removes a testimonial permanently.
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "testimonial"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "testimonial", "delete")
	}
	s.invalidate(ctx)
	return nil
}

func (s *TestimonialService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, testimonialCachePrefix)
	}
}
