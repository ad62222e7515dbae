package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Jayantx07/Education-Point/internal/models"
)

const testimonialColumns = `id, name, image, course, rating, testimonial, is_active, created_at, updated_at`

// TestimonialRepository provides database access for testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

// NewTestimonialRepository creates a new instance of TestimonialRepository.
func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// List returns testimonials newest first, active only unless includeInactive is set.
func (r *TestimonialRepository) List(ctx context.Context, includeInactive bool) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	items := make([]models.Testimonial, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// FindByID returns one testimonial.
func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1 LIMIT 1`
	var item models.Testimonial
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return &item, nil
}

// Create inserts a testimonial.
func (r *TestimonialRepository) Create(ctx context.Context, item *models.Testimonial) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	const query = `INSERT INTO testimonials (` + testimonialColumns + `) VALUES (:id, :name, :image, :course, :rating, :testimonial, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns.
func (r *TestimonialRepository) Update(ctx context.Context, item *models.Testimonial) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE testimonials SET name = :name, image = :image, course = :course, rating = :rating, testimonial = :testimonial, is_active = :is_active, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return requireRow(res)
}

// Delete removes the testimonial permanently.
func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return requireRow(res)
}

// DeleteAll clears the table. Used by the seeder only.
func (r *TestimonialRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM testimonials`); err != nil {
		return fmt.Errorf("clear testimonials: %w", err)
	}
	return nil
}
