package service

import (
	"context"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
)

type overviewRepository interface {
	Counts(ctx context.Context) (*models.Overview, error)
}

// OverviewService serves the admin dashboard counters.
type OverviewService struct {
	repo overviewRepository
}

// NewOverviewService constructs an OverviewService.
func NewOverviewService(repo overviewRepository) *OverviewService {
	return &OverviewService{repo: repo}
}

// Overview returns record counts across the site.
func (s *OverviewService) Overview(ctx context.Context) (*models.Overview, error) {
	overview, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load overview")
	}
	return overview, nil
}
