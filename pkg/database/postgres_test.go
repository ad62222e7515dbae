package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type flakyPinger struct {
	failures int
	calls    int
}

func (p *flakyPinger) PingContext(ctx context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestPingWithRetryRecovers(t *testing.T) {
	p := &flakyPinger{failures: 2}

	err := pingWithRetry(context.Background(), p, 5, time.Millisecond, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, p.calls)
}

func TestPingWithRetryGivesUp(t *testing.T) {
	p := &flakyPinger{failures: 10}

	err := pingWithRetry(context.Background(), p, 3, time.Millisecond, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, p.calls)
}

func TestPingWithRetryStopsOnCancel(t *testing.T) {
	p := &flakyPinger{failures: 10}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pingWithRetry(ctx, p, 3, time.Hour, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, p.calls)
}
