package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
)

func sampleCourse(title, category string, active, popular bool, age time.Duration) models.Course {
	now := time.Now().UTC()
	return models.Course{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "desc",
		Category:    category,
		Level:       "Beginner",
		Duration:    "3 months",
		Price:       1000,
		Instructor:  models.Instructor{Name: "Dr. Rao"},
		Image:       "/uploads/c.png",
		Syllabus:    models.Syllabus{},
		IsActive:    active,
		IsPopular:   popular,
		CreatedAt:   now.Add(-age),
	}
}

func validCreateRequest() models.CreateCourseRequest {
	return models.CreateCourseRequest{
		Title:       "  NEET Crash Course ",
		Description: "Intensive revision",
		Category:    "NEET",
		Level:       "Advanced",
		Duration:    "3 months",
		Price:       4999,
		Instructor:  models.Instructor{Name: "Dr. Rao"},
		Image:       "/uploads/neet.png",
	}
}

func TestListExcludesInactiveForAnyFilter(t *testing.T) {
	catalog := &fakeCatalog{courses: []models.Course{
		sampleCourse("NEET Active", "NEET", true, false, time.Hour),
		sampleCourse("NEET Hidden", "NEET", false, true, time.Minute),
		sampleCourse("Maths", "MATHS", true, false, 2*time.Hour),
	}}
	svc := NewCourseService(fakeCourseRepo{catalog}, nil, nil, nil)

	filters := []models.CourseFilter{{}, {Category: "NEET"}, {Category: "All"}, {Search: "neet"}, {Category: "NEET", Search: "hidden"}}
	for _, filter := range filters {
		courses, err := svc.List(context.Background(), filter)
		require.NoError(t, err)
		for _, c := range courses {
			assert.True(t, c.IsActive, "filter %+v returned inactive course %s", filter, c.Title)
		}
	}

	all, err := svc.List(context.Background(), models.CourseFilter{Category: "all"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "NEET Active", all[0].Title)

	withInactive, err := svc.List(context.Background(), models.CourseFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, withInactive, 3)
}

func TestListPopularIsCappedAndActive(t *testing.T) {
	catalog := &fakeCatalog{}
	for i := 0; i < 9; i++ {
		catalog.courses = append(catalog.courses, sampleCourse(fmt.Sprintf("Popular %d", i), "CUET", true, true, time.Duration(i)*time.Minute))
	}
	catalog.courses = append(catalog.courses, sampleCourse("Hidden popular", "CUET", false, true, 0))
	svc := NewCourseService(fakeCourseRepo{catalog}, nil, nil, nil)

	courses, err := svc.ListPopular(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(courses), models.PopularCourseLimit)
	for _, c := range courses {
		assert.True(t, c.IsActive)
		assert.True(t, c.IsPopular)
	}
}

func TestCreateCourseAppliesDefaults(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := NewCourseService(fakeCourseRepo{catalog}, nil, nil, nil)

	course, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "NEET Crash Course", course.Title)
	assert.True(t, course.IsActive)
	assert.False(t, course.IsPopular)
	assert.NotNil(t, course.Syllabus)
	assert.NotEmpty(t, course.ID)
}

func TestCreateCourseRejectsInvalidEnumAndRange(t *testing.T) {
	svc := NewCourseService(fakeCourseRepo{&fakeCatalog{}}, nil, nil, nil)

	req := validCreateRequest()
	req.Category = "ART"
	req.Rating = 7
	req.Instructor = models.Instructor{}

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Details, "category")
	assert.Contains(t, appErr.Details, "rating")
	assert.Contains(t, appErr.Details, "instructor.name")
}

func TestUpdateCourseMergesAndRevalidates(t *testing.T) {
	existing := sampleCourse("Science", "SCIENCE", true, false, time.Hour)
	catalog := &fakeCatalog{courses: []models.Course{existing}}
	svc := NewCourseService(fakeCourseRepo{catalog}, nil, nil, nil)

	price := 2500.0
	updated, err := svc.Update(context.Background(), existing.ID, models.UpdateCourseRequest{Price: &price, IsPopular: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, updated.Price)
	assert.True(t, updated.IsPopular)
	assert.Equal(t, "Science", updated.Title)

	level := "Expert"
	_, err = svc.Update(context.Background(), existing.ID, models.UpdateCourseRequest{Level: &level})
	require.Error(t, err)
	assert.Equal(t, "Beginner", catalog.courses[0].Level)
}

func TestDeleteCourseLeavesTestimonials(t *testing.T) {
	course := sampleCourse("CUET Prep", "CUET", true, false, time.Hour)
	catalog := &fakeCatalog{
		courses:      []models.Course{course},
		testimonials: []models.Testimonial{{ID: uuid.NewString(), Name: "Riya", Course: "CUET Prep", Rating: 5, Testimonial: "Great", IsActive: true}},
	}
	svc := NewCourseService(fakeCourseRepo{catalog}, nil, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), course.ID))
	assert.Empty(t, catalog.courses)
	require.Len(t, catalog.testimonials, 1)
	assert.Equal(t, "CUET Prep", catalog.testimonials[0].Course)

	_, err := svc.Get(context.Background(), course.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestGetCourseMalformedID(t *testing.T) {
	svc := NewCourseService(fakeCourseRepo{&fakeCatalog{}}, nil, nil, nil)

	_, err := svc.Get(context.Background(), "123")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestCourseListCacheAndInvalidation(t *testing.T) {
	catalog := &fakeCatalog{courses: []models.Course{sampleCourse("Maths", "MATHS", true, false, time.Hour)}}
	cache := newFakeListCache()
	svc := NewCourseService(fakeCourseRepo{catalog}, cache, nil, nil)

	_, err := svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.listCalls)

	_, err = svc.List(context.Background(), models.CourseFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.listCalls)

	_, err = svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{courseCachePrefix}, cache.invalidated)

	courses, err := svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, 3, catalog.listCalls)
}

func TestCourseListCacheKeysDoNotCollide(t *testing.T) {
	catalog := &fakeCatalog{courses: []models.Course{sampleCourse("NEET Prep", "NEET", true, false, time.Hour)}}
	cache := newFakeListCache()
	svc := NewCourseService(fakeCourseRepo{catalog}, cache, nil, nil)

	_, err := svc.List(context.Background(), models.CourseFilter{Category: "NEET", Search: "x:y"})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), models.CourseFilter{Category: "NEET:x", Search: "y"})
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.listCalls)
	assert.Len(t, cache.entries, 2)
}
