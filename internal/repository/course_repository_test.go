package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayantx07/Education-Point/internal/models"
)

var courseRowColumns = []string{"id", "title", "description", "category", "level", "duration", "price", "discount", "instructor", "image", "enrolled_students", "rating", "num_reviews", "syllabus", "is_popular", "is_active", "created_at", "updated_at"}

func courseRow(rows *sqlmock.Rows, id, title string, popular bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, title, "desc", "NEET", "Advanced", "12 months", "4999.00", "0", []byte(`{"name":"Dr. Rao","bio":"Biology"}`), "/uploads/neet.png", 10, "4.5", 3, []byte(`[{"title":"Botany"}]`), popular, true, now, now)
}

func TestCourseListActiveOnlyByDefault(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE is_active = TRUE ORDER BY created_at DESC")).
		WillReturnRows(courseRow(sqlmock.NewRows(courseRowColumns), "c1", "NEET Crash Course", false))

	courses, err := repo.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Dr. Rao", courses[0].Instructor.Name)
	assert.Equal(t, 4999.0, courses[0].Price)
	assert.Equal(t, "Botany", courses[0].Syllabus[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseListFiltersCategoryAndEscapedSearch(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE is_active = TRUE AND category = $1 AND LOWER(title) LIKE $2 ORDER BY created_at DESC")).
		WithArgs("NEET", `%100\% neet%`).
		WillReturnRows(sqlmock.NewRows(courseRowColumns))

	courses, err := repo.List(context.Background(), models.CourseFilter{Category: "NEET", Search: "100% NEET"})
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseListIncludeInactive(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`FROM courses ORDER BY created_at DESC$`).WillReturnRows(sqlmock.NewRows(courseRowColumns))

	_, err := repo.List(context.Background(), models.CourseFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseListPopularUsesLimit(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE AND is_popular = TRUE ORDER BY created_at DESC LIMIT $1")).
		WithArgs(models.PopularCourseLimit).
		WillReturnRows(courseRow(sqlmock.NewRows(courseRowColumns), "c1", "CUET", true))

	courses, err := repo.ListPopular(context.Background(), models.PopularCourseLimit)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type jsonArg struct{ contains string }

func (a jsonArg) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	return ok && regexp.MustCompile(regexp.QuoteMeta(a.contains)).Match(b)
}

func TestCourseCreateStoresJSONColumns(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").
		WithArgs(sqlmock.AnyArg(), "Maths Foundation", "desc", "MATHS", "Beginner", "6 months", 999.0, 0.0,
			jsonArg{`"name":"Mr. Iyer"`}, "/uploads/m.png", 0, 0.0, 0, jsonArg{`[]`}, false, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{
		Title: "Maths Foundation", Description: "desc", Category: "MATHS", Level: "Beginner", Duration: "6 months",
		Price: 999, Instructor: models.Instructor{Name: "Mr. Iyer"}, Image: "/uploads/m.png", IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), course))
	assert.NotEmpty(t, course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDeleteOnlyTouchesCourses(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM courses WHERE id = $1")).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
