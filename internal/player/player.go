// Package player keeps the state of the livestream video controls in sync with a
// playback element and a fullscreen surface.
package player

import (
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/amaumene/cinetro/internal/constants"
	apperrors "github.com/amaumene/cinetro/internal/errors"
	"github.com/amaumene/cinetro/pkg/logger"
)

// DefaultVolume is the volume a fresh controller starts with.
const DefaultVolume = 0.7

const exitFullscreenFailed = "Failed to exit fullscreen. Please try again."

// Element is the playback element the controls drive.
type Element interface {
	Play() error
	Pause()
	SetVolume(v float64)
	SetCurrentTime(t float64)
}

// Fullscreen is the surface that can be put into fullscreen.
type Fullscreen interface {
	Active() bool
	Request() error
	Exit() error
}

// State is a snapshot of the controls.
type State struct {
	Playing         bool    `json:"playing"`
	Volume          float64 `json:"volume"`
	CurrentTime     float64 `json:"current_time"`
	Duration        float64 `json:"duration"`
	Fullscreen      bool    `json:"fullscreen"`
	ControlsVisible bool    `json:"controls_visible"`
	Notice          string  `json:"notice,omitempty"`
}

// Controller owns the control state. All methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	element   Element
	screen    Fullscreen
	clock     clock.Clock
	hideDelay time.Duration
	logger    logger.Logger

	state     State
	hideTimer *clock.Timer
	timerGen  uint64
	closed    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source for the auto-hide timer.
func WithClock(c clock.Clock) Option {
	return func(p *Controller) { p.clock = c }
}

// WithHideDelay overrides the inactivity delay before controls hide.
func WithHideDelay(d time.Duration) Option {
	return func(p *Controller) { p.hideDelay = d }
}

// WithLogger sets the logger used for playback and fullscreen failures.
func WithLogger(l logger.Logger) Option {
	return func(p *Controller) { p.logger = l }
}

// New creates a paused controller with visible controls.
func New(element Element, screen Fullscreen, opts ...Option) *Controller {
	c := &Controller{
		element:   element,
		screen:    screen,
		clock:     clock.New(),
		hideDelay: constants.ControlsHideDelay,
		state: State{
			Volume:          DefaultVolume,
			ControlsVisible: true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Discard()
	}
	if screen != nil {
		c.state.Fullscreen = screen.Active()
	}
	element.SetVolume(c.state.Volume)
	return c
}

// State returns a snapshot of the controls.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// TogglePlay pauses a playing element or starts a paused one. A rejected start leaves
// the controller paused and sets the notice; the error is also returned.
func (c *Controller) TogglePlay() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Playing {
		c.element.Pause()
		c.pausedLocked()
		return nil
	}

	if err := c.element.Play(); err != nil {
		c.logger.Warnf("[Player] play rejected: %v", err)
		perr := apperrors.NewPlaybackError(err)
		c.state.Playing = false
		c.state.Notice = perr.Message
		return perr
	}
	c.state.Playing = true
	return nil
}

// SetVolume clamps v to [0,1] and applies it.
func (c *Controller) SetVolume(v float64) {
	v = clamp(v, 0, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.element.SetVolume(v)
	c.state.Volume = v
}

// Seek moves playback to t, clamped to [0,duration] when the duration is known.
// The displayed position updates immediately.
func (c *Controller) Seek(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	upper := math.Inf(1)
	if c.state.Duration > 0 {
		upper = c.state.Duration
	}
	t = clamp(t, 0, upper)
	c.element.SetCurrentTime(t)
	c.state.CurrentTime = t
}

// ToggleFullscreen asks the surface to enter or leave fullscreen. The fullscreen flag
// only changes when FullscreenChanged reports the outcome.
func (c *Controller) ToggleFullscreen() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen == nil {
		perr := apperrors.NewFullscreenError(nil)
		c.state.Notice = perr.Message
		return perr
	}

	if !c.screen.Active() {
		if err := c.screen.Request(); err != nil {
			c.logger.Warnf("[Player] fullscreen request failed: %v", err)
			perr := apperrors.NewFullscreenError(err)
			c.state.Notice = perr.Message
			return perr
		}
		return nil
	}

	if err := c.screen.Exit(); err != nil {
		c.logger.Warnf("[Player] fullscreen exit failed: %v", err)
		c.state.Notice = exitFullscreenFailed
		return apperrors.NewCatalogError(apperrors.ErrorTypeFullscreenFailed, exitFullscreenFailed, err)
	}
	return nil
}

// FullscreenChanged records the fullscreen state reported by the platform.
func (c *Controller) FullscreenChanged(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Fullscreen = active
}

// PointerMoved shows the controls and re-arms the hide timer while playing.
func (c *Controller) PointerMoved() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Playing || c.closed {
		return
	}
	c.state.ControlsVisible = true
	c.armHideTimerLocked()
}

// TimeUpdated records the element's playback position.
func (c *Controller) TimeUpdated(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CurrentTime = clamp(t, 0, math.Inf(1))
}

// DurationChanged records the element's duration. Live streams report an infinite
// duration, which is stored as unknown (0).
func (c *Controller) DurationChanged(d float64) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		d = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Duration = d
}

// Played records that the element started playing.
func (c *Controller) Played() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Playing = true
}

// Paused records that the element paused on its own.
func (c *Controller) Paused() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pausedLocked()
}

// Ended records the end of playback and rewinds the displayed position.
func (c *Controller) Ended() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pausedLocked()
	c.state.CurrentTime = 0
}

// PlaybackRejected records an asynchronous play failure reported by the element.
func (c *Controller) PlaybackRejected(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Warnf("[Player] playback rejected by platform: %s", reason)
	c.pausedLocked()
	c.state.Notice = apperrors.NewPlaybackError(nil).Message
}

// FullscreenRejected records that the platform refused a fullscreen request made
// after ToggleFullscreen returned. The fullscreen flag is left as reported.
func (c *Controller) FullscreenRejected(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Warnf("[Player] fullscreen rejected by platform: %s", reason)
	c.state.Notice = apperrors.NewFullscreenError(nil).Message
}

// DismissNotice clears the transient notice.
func (c *Controller) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Notice = ""
}

// Close cancels the hide timer. Timer callbacks that were already in flight are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopHideTimerLocked()
}

func (c *Controller) pausedLocked() {
	c.state.Playing = false
	c.state.ControlsVisible = true
	c.stopHideTimerLocked()
}

func (c *Controller) armHideTimerLocked() {
	c.stopHideTimerLocked()
	gen := c.timerGen
	c.hideTimer = c.clock.AfterFunc(c.hideDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || gen != c.timerGen {
			return
		}
		c.state.ControlsVisible = false
		c.hideTimer = nil
	})
}

func (c *Controller) stopHideTimerLocked() {
	c.timerGen++
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
