package services

import (
	"context"
	"sync"
	"time"

	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/pkg/logger"
)

// Sweeper drops expired entries and reports how many it removed.
type Sweeper interface {
	CleanExpired() int
}

// CleanupService periodically sweeps idle sessions so their timers are released even
// when no visitor touches them again.
type CleanupService struct {
	sweeper  Sweeper
	logger   logger.Logger
	interval time.Duration
	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sweeper Sweeper, log logger.Logger) *CleanupService {
	return &CleanupService{
		sweeper:  sweeper,
		logger:   log,
		interval: constants.SessionCleanupInterval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetInterval sets how often cleanup runs
func (c *CleanupService) SetInterval(duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = duration
}

// Start begins the cleanup service
func (c *CleanupService) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil
	}
	c.running = true
	interval := c.interval
	c.mu.Unlock()

	c.logger.Infof("[Cleanup] starting session sweeper with interval: %v", interval)

	go c.cleanupLoop(ctx, interval)

	return nil
}

// Stop stops the cleanup service
func (c *CleanupService) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	c.running = false
	close(c.stopChan)
	c.logger.Infof("[Cleanup] session sweeper stopped")
}

// Done is closed once the loop has exited.
func (c *CleanupService) Done() <-chan struct{} {
	return c.done
}

// cleanupLoop runs periodic cleanup
func (c *CleanupService) cleanupLoop(ctx context.Context, interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Stop()
			return
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.performCleanup()
		}
	}
}

// performCleanup executes the cleanup process
func (c *CleanupService) performCleanup() int {
	removed := c.sweeper.CleanExpired()
	if removed > 0 {
		c.logger.Infof("[Cleanup] closed %d idle sessions", removed)
	}
	return removed
}

// CleanupNow performs immediate cleanup (useful for testing or manual trigger)
func (c *CleanupService) CleanupNow() int {
	return c.performCleanup()
}
