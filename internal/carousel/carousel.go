// Package carousel rotates through the featured titles shown in the home page hero.
package carousel

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/amaumene/cinetro/internal/constants"
)

// State is a snapshot of the carousel.
type State[T any] struct {
	Index         int  `json:"index"`
	Count         int  `json:"count"`
	Transitioning bool `json:"transitioning"`
	Hovering      bool `json:"hovering"`
	Current       *T   `json:"current,omitempty"`
}

// Carousel holds an index into a fixed list of items and advances it on a timer.
// Index is always in [0, len(items)) when items is non-empty.
type Carousel[T any] struct {
	mu         sync.Mutex
	items      []T
	clock      clock.Clock
	interval   time.Duration
	autoFade   time.Duration
	manualFade time.Duration

	index         int
	transitioning bool
	pending       int
	hovering      bool
	closed        bool

	autoTimer *clock.Timer
	autoGen   uint64
	fadeTimer *clock.Timer
}

// Option configures a Carousel.
type Option func(*options)

type options struct {
	clock      clock.Clock
	interval   time.Duration
	autoFade   time.Duration
	manualFade time.Duration
}

// WithClock sets the time source for rotation and fades.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithInterval overrides the delay between automatic advances.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithFades overrides the fade durations of automatic and manual advances.
func WithFades(auto, manual time.Duration) Option {
	return func(o *options) {
		o.autoFade = auto
		o.manualFade = manual
	}
}

// New starts a carousel over items. Auto-advance only runs with two or more items.
func New[T any](items []T, opts ...Option) *Carousel[T] {
	o := options{
		clock:      clock.New(),
		interval:   constants.CarouselInterval,
		autoFade:   constants.CarouselAutoFade,
		manualFade: constants.CarouselManualFade,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Carousel[T]{
		items:      append([]T(nil), items...),
		clock:      o.clock,
		interval:   o.interval,
		autoFade:   o.autoFade,
		manualFade: o.manualFade,
	}

	c.mu.Lock()
	c.armAutoLocked()
	c.mu.Unlock()
	return c
}

// State returns a snapshot of the carousel.
func (c *Carousel[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State[T]{
		Index:         c.index,
		Count:         len(c.items),
		Transitioning: c.transitioning,
		Hovering:      c.hovering,
	}
	if len(c.items) > 0 {
		cur := c.items[c.index]
		s.Current = &cur
	}
	return s
}

// Current returns the item at the index, or false for an empty carousel.
func (c *Carousel[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[c.index], true
}

// Len returns the number of items.
func (c *Carousel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Next fades to the following item.
func (c *Carousel[T]) Next() {
	c.step(1)
}

// Prev fades to the preceding item.
func (c *Carousel[T]) Prev() {
	c.step(-1)
}

func (c *Carousel[T]) step(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || len(c.items) < 2 {
		return
	}
	// manual navigation restarts the rotation interval
	c.armAutoLocked()
	c.beginFadeLocked(delta, c.manualFade)
}

// SetHovering pauses auto-advance while the pointer is over the hero and resumes it
// when it leaves.
func (c *Carousel[T]) SetHovering(hovering bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.hovering == hovering {
		return
	}
	c.hovering = hovering
	c.armAutoLocked()
}

// Close cancels every pending timer. The carousel stays readable.
func (c *Carousel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopAutoLocked()
	if c.fadeTimer != nil {
		c.fadeTimer.Stop()
		c.fadeTimer = nil
	}
	c.transitioning = false
	c.pending = 0
}

func (c *Carousel[T]) stopAutoLocked() {
	c.autoGen++
	if c.autoTimer != nil {
		c.autoTimer.Stop()
		c.autoTimer = nil
	}
}

func (c *Carousel[T]) armAutoLocked() {
	c.stopAutoLocked()
	if c.closed || c.hovering || len(c.items) < 2 || c.interval <= 0 {
		return
	}
	gen := c.autoGen
	c.autoTimer = c.clock.AfterFunc(c.interval, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || gen != c.autoGen {
			return
		}
		c.beginFadeLocked(1, c.autoFade)
		c.armAutoLocked()
	})
}

// beginFadeLocked marks the carousel as transitioning and moves the index once the
// fade completes. Steps requested mid-fade are applied together at the end.
func (c *Carousel[T]) beginFadeLocked(delta int, fade time.Duration) {
	c.pending += delta
	if c.transitioning {
		return
	}
	c.transitioning = true
	c.fadeTimer = c.clock.AfterFunc(fade, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || !c.transitioning {
			return
		}
		c.index = wrap(c.index+c.pending, len(c.items))
		c.pending = 0
		c.transitioning = false
		c.fadeTimer = nil
	})
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
