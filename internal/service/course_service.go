package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/pkg/validation"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	ListPopular(ctx context.Context, limit int) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type listCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context, prefix string)
}

// CourseService implements the course catalog use cases.
type CourseService struct {
	repo      courseRepository
	cache     listCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService. cache may be nil.
func NewCourseService(repo courseRepository, cache listCache, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns courses newest first. The "all" category and an empty one both mean no filter.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	if strings.EqualFold(filter.Category, "all") {
		filter.Category = ""
	}
	filter.Search = strings.TrimSpace(filter.Search)

	cacheable := !filter.IncludeInactive && s.cache != nil
	key := courseCachePrefix + fmt.Sprintf("list:%q:%q", filter.Category, strings.ToLower(filter.Search))
	if cacheable {
		var cached []models.Course
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "courses", "list")
	}
	if cacheable {
		s.cache.Set(ctx, key, courses)
	}
	return courses, nil
}

// ListPopular returns up to six active courses flagged popular.
func (s *CourseService) ListPopular(ctx context.Context) ([]models.Course, error) {
	key := courseCachePrefix + "popular"
	if s.cache != nil {
		var cached []models.Course
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	courses, err := s.repo.ListPopular(ctx, models.PopularCourseLimit)
	if err != nil {
		return nil, storeError(err, "popular courses", "list")
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, courses)
	}
	return courses, nil
}

// Get returns one course.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	if err := checkID(id, "course"); err != nil {
		return nil, err
	}
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "course", "load")
	}
	return course, nil
}

// Create validates and stores a new course. isActive defaults to true.
func (s *CourseService) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Category:         req.Category,
		Level:            req.Level,
		Duration:         req.Duration,
		Price:            req.Price,
		Discount:         req.Discount,
		Instructor:       req.Instructor,
		Image:            req.Image,
		EnrolledStudents: req.EnrolledStudents,
		Rating:           req.Rating,
		NumReviews:       req.NumReviews,
		Syllabus:         models.Syllabus(req.Syllabus),
		IsPopular:        req.IsPopular,
		IsActive:         boolOr(req.IsActive, true),
	}
	if course.Syllabus == nil {
		course.Syllabus = models.Syllabus{}
	}
	if err := s.validator.Struct(course); err != nil {
		return nil, validation.Error(err, "invalid course payload")
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, storeError(err, "course", "create")
	}
	s.invalidate(ctx)
	s.logger.Info("course created", zap.String("course_id", course.ID))
	return course, nil
}

// Update merges the provided fields onto the stored course and re-validates the result.
func (s *CourseService) Update(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	mergeCourse(course, req)
	if err := s.validator.Struct(course); err != nil {
		return nil, validation.Error(err, "invalid course payload")
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, storeError(err, "course", "update")
	}
	s.invalidate(ctx)
	return course, nil
}

// Delete removes a course permanently.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "course"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "course", "delete")
	}
	s.invalidate(ctx)
	s.logger.Info("course deleted", zap.String("course_id", id))
	return nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, courseCachePrefix)
	}
}

func mergeCourse(course *models.Course, req models.UpdateCourseRequest) {
	if req.Title != nil {
		course.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Discount != nil {
		course.Discount = *req.Discount
	}
	if req.Instructor != nil {
		course.Instructor = *req.Instructor
	}
	if req.Image != nil {
		course.Image = *req.Image
	}
	if req.EnrolledStudents != nil {
		course.EnrolledStudents = *req.EnrolledStudents
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}
	if req.NumReviews != nil {
		course.NumReviews = *req.NumReviews
	}
	if req.Syllabus != nil {
		course.Syllabus = models.Syllabus(*req.Syllabus)
	}
	if req.IsPopular != nil {
		course.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
}
