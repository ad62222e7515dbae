package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Jayantx07/Education-Point/internal/models"
)

// OverviewRepository aggregates dashboard counters.
type OverviewRepository struct {
	db *sqlx.DB
}

// NewOverviewRepository creates a new instance of OverviewRepository.
func NewOverviewRepository(db *sqlx.DB) *OverviewRepository {
	return &OverviewRepository{db: db}
}

// Counts returns all dashboard counters in a single round trip.
func (r *OverviewRepository) Counts(ctx context.Context) (*models.Overview, error) {
	const query = `SELECT
	(SELECT COUNT(*) FROM users) AS users,
	(SELECT COUNT(*) FROM courses) AS courses,
	(SELECT COUNT(*) FROM courses WHERE is_active = TRUE) AS active_courses,
	(SELECT COUNT(*) FROM testimonials) AS testimonials,
	(SELECT COUNT(*) FROM contacts) AS messages,
	(SELECT COUNT(*) FROM contacts WHERE status = 'Unread') AS unread_messages`

	var overview models.Overview
	if err := r.db.GetContext(ctx, &overview, query); err != nil {
		return nil, fmt.Errorf("count overview: %w", err)
	}
	return &overview, nil
}
