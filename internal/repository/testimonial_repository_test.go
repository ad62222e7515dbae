package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayantx07/Education-Point/internal/models"
)

var testimonialRowColumns = []string{"id", "name", "image", "course", "rating", "testimonial", "is_active", "created_at", "updated_at"}

func TestTestimonialListActiveOnly(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTestimonialRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM testimonials WHERE is_active = TRUE ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(testimonialRowColumns).AddRow("t1", "Riya", "/uploads/r.png", "NEET", 5, "Great", true, now, now))

	items, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialListIncludeInactive(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTestimonialRepository(db)

	mock.ExpectQuery(`FROM testimonials ORDER BY created_at DESC$`).WillReturnRows(sqlmock.NewRows(testimonialRowColumns))

	items, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTestimonialRepository(db)

	mock.ExpectExec("INSERT INTO testimonials").WillReturnResult(sqlmock.NewResult(1, 1))

	item := &models.Testimonial{Name: "Riya", Image: "/uploads/r.png", Course: "NEET", Rating: 4, Testimonial: "Helpful", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialUpdateMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTestimonialRepository(db)

	mock.ExpectExec("UPDATE testimonials SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Testimonial{ID: "t404"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
