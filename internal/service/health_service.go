package service

import (
	"context"
	"errors"
	"time"

	"github.com/Jayantx07/Education-Point/internal/models"
)

var errNoDatabase = errors.New("database not configured")

type pinger interface {
	PingContext(ctx context.Context) error
}

// HealthService reports process uptime and database reachability.
type HealthService struct {
	db      pinger
	started time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewHealthService constructs a HealthService. started is the process start time.
func NewHealthService(db pinger, started time.Time) *HealthService {
	return &HealthService{db: db, started: started, timeout: 2 * time.Second, now: time.Now}
}

// Check pings the database. Status is "ok" when reachable and "degraded" otherwise.
func (s *HealthService) Check(ctx context.Context) models.HealthStatus {
	now := s.now()
	status := models.HealthStatus{
		Status:    "ok",
		Uptime:    now.Sub(s.started).Seconds(),
		Timestamp: now.UTC(),
		Database:  models.DatabaseHealth{Connected: true, State: "connected"},
	}

	var err error
	if s.db == nil {
		err = errNoDatabase
	} else {
		pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err = s.db.PingContext(pingCtx)
		cancel()
	}
	if err != nil {
		status.Status = "degraded"
		status.Database = models.DatabaseHealth{Connected: false, State: "disconnected"}
	}
	return status
}
