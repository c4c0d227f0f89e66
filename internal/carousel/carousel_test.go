package carousel

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = time.Second

func newCarousel(t *testing.T, items ...string) (*Carousel[string], *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	c := New(items, WithClock(mock))
	t.Cleanup(c.Close)
	return c, mock
}

func waitIndex(t *testing.T, c *Carousel[string], want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		s := c.State()
		return s.Index == want && !s.Transitioning
	}, waitFor, 2*time.Millisecond)
}

func waitTransitioning(t *testing.T, c *Carousel[string]) {
	t.Helper()
	require.Eventually(t, func() bool { return c.State().Transitioning }, waitFor, 2*time.Millisecond)
}

func TestAutoAdvanceWraps(t *testing.T) {
	c, mock := newCarousel(t, "a", "b", "c")

	gap := 7 * time.Second
	for _, want := range []int{1, 2, 0} {
		mock.Add(gap)
		waitTransitioning(t, c)
		mock.Add(800 * time.Millisecond)
		waitIndex(t, c, want)
		gap = 7*time.Second - 800*time.Millisecond
	}

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur)
}

func TestSingleItemDoesNotRotate(t *testing.T) {
	c, mock := newCarousel(t, "only")

	mock.Add(time.Minute)
	s := c.State()
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 1, s.Count)
	assert.False(t, s.Transitioning)

	c.Next()
	assert.False(t, c.State().Transitioning)
}

func TestEmptyCarousel(t *testing.T) {
	c, mock := newCarousel(t)

	_, ok := c.Current()
	assert.False(t, ok)
	c.Next()
	c.Prev()
	mock.Add(time.Minute)

	s := c.State()
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.Current)
}

func TestHoverPausesRotation(t *testing.T) {
	c, mock := newCarousel(t, "a", "b")

	c.SetHovering(true)
	mock.Add(30 * time.Second)
	s := c.State()
	assert.True(t, s.Hovering)
	assert.Equal(t, 0, s.Index)
	assert.False(t, s.Transitioning)

	c.SetHovering(false)
	mock.Add(7 * time.Second)
	waitTransitioning(t, c)
	mock.Add(800 * time.Millisecond)
	waitIndex(t, c, 1)
}

func TestManualNavigation(t *testing.T) {
	c, mock := newCarousel(t, "a", "b", "c")

	c.Next()
	assert.True(t, c.State().Transitioning)
	mock.Add(500 * time.Millisecond)
	waitIndex(t, c, 1)

	c.Prev()
	mock.Add(500 * time.Millisecond)
	waitIndex(t, c, 0)

	c.Prev()
	mock.Add(500 * time.Millisecond)
	waitIndex(t, c, 2)
	assert.Equal(t, "c", *c.State().Current)
}

func TestStepsDuringFadeAccumulate(t *testing.T) {
	c, mock := newCarousel(t, "a", "b", "c", "d")

	c.Next()
	c.Next()
	c.Next()
	c.Prev()
	mock.Add(500 * time.Millisecond)
	waitIndex(t, c, 2)
}

func TestCloseCancelsTimers(t *testing.T) {
	c, mock := newCarousel(t, "a", "b")

	c.Next()
	c.Close()
	mock.Add(time.Second)
	mock.Add(time.Minute)

	s := c.State()
	assert.Equal(t, 0, s.Index)
	assert.False(t, s.Transitioning)

	c.Next()
	c.SetHovering(true)
	assert.False(t, c.State().Transitioning)
	assert.False(t, c.State().Hovering)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{4, 3, 1},
		{-1, 3, 2},
		{-4, 3, 2},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wrap(tt.i, tt.n), "wrap(%d, %d)", tt.i, tt.n)
	}
}
