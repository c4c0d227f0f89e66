package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/cinetro/pkg/logger"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) CleanExpired() int {
	s.calls.Add(1)
	return 2
}

func TestCleanupNow(t *testing.T) {
	sweeper := &countingSweeper{}
	svc := NewCleanupService(sweeper, logger.Discard())

	assert.Equal(t, 2, svc.CleanupNow())
	assert.Equal(t, int32(1), sweeper.calls.Load())
}

func TestCleanupLoopSweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	svc := NewCleanupService(sweeper, logger.Discard())
	svc.SetInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Start(ctx), "second start is a no-op")

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-svc.Done():
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestCleanupStop(t *testing.T) {
	svc := NewCleanupService(&countingSweeper{}, logger.Discard())
	svc.SetInterval(time.Hour)
	require.NoError(t, svc.Start(context.Background()))

	svc.Stop()
	svc.Stop()

	select {
	case <-svc.Done():
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
