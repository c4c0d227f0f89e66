package session

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/cinetro/internal/models"
)

func featured(titles ...string) []models.Movie {
	out := make([]models.Movie, len(titles))
	for i, title := range titles {
		out[i] = models.Movie{ID: i + 1, Title: title}
	}
	return out
}

func TestEnsureCreatesAndReuses(t *testing.T) {
	st := NewStore(10, time.Hour)

	s, created := st.Ensure("")
	require.True(t, created)
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	again, created := st.Ensure(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := st.Ensure("not-a-known-id")
	assert.True(t, created)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, st.Len())
}

func TestOpenPlayerReplacesPrevious(t *testing.T) {
	mock := clock.NewMock()
	st := NewStore(10, time.Hour, WithClock(mock))
	s, _ := st.Ensure("")

	first := s.OpenPlayer(1, "http://cdn/one.m3u8")
	require.NoError(t, first.Controller.TogglePlay())
	first.Controller.PointerMoved()

	second := s.OpenPlayer(2, "http://cdn/two.m3u8")
	mock.Add(10 * time.Second)

	_, ok := s.Player(1)
	assert.False(t, ok)
	got, ok := s.Player(2)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.True(t, first.Controller.State().ControlsVisible, "closed controller must not react to its timer")
}

func TestRemoteQueuesCommands(t *testing.T) {
	st := NewStore(10, time.Hour)
	s, _ := st.Ensure("")
	p := s.OpenPlayer(7, "http://cdn/live.m3u8")

	p.Controller.DurationChanged(100)
	require.NoError(t, p.Controller.TogglePlay())
	p.Controller.SetVolume(0.3)
	p.Controller.Seek(42)
	require.NoError(t, p.Controller.ToggleFullscreen())

	assert.Equal(t, []Command{
		{Name: CommandVolume, Value: 0.7},
		{Name: CommandPlay},
		{Name: CommandVolume, Value: 0.3},
		{Name: CommandSeek, Value: 42},
		{Name: CommandRequestFullscreen},
	}, p.Remote.Drain())
	assert.Empty(t, p.Remote.Drain())

	p.Remote.SetFullscreen(true)
	p.Controller.FullscreenChanged(true)
	require.NoError(t, p.Controller.ToggleFullscreen())
	assert.Equal(t, []Command{{Name: CommandExitFullscreen}}, p.Remote.Drain())
}

func TestRemoteWithoutSourceRejectsPlay(t *testing.T) {
	st := NewStore(10, time.Hour)
	s, _ := st.Ensure("")
	p := s.OpenPlayer(3, "")

	err := p.Controller.TogglePlay()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSource)
	assert.False(t, p.Controller.State().Playing)
	assert.NotEmpty(t, p.Controller.State().Notice)
}

func TestEvictionClosesSession(t *testing.T) {
	st := NewStore(1, time.Hour)
	a, _ := st.Ensure("")
	hero := a.OpenHero(featured("one", "two"))
	a.OpenPlayer(1, "http://cdn/one.m3u8")

	st.Ensure("")

	_, ok := st.Get(a.ID)
	assert.False(t, ok)
	_, ok = a.Hero()
	assert.False(t, ok)
	_, ok = a.Player(1)
	assert.False(t, ok)

	hero.Next()
	assert.False(t, hero.State().Transitioning)
}

func TestExpiredSessionsAreCleaned(t *testing.T) {
	mock := clock.NewMock()
	st := NewStore(10, time.Hour, WithClock(mock))
	s, _ := st.Ensure("")
	s.OpenHero(featured("one", "two"))

	mock.Add(30 * time.Minute)
	_, ok := st.Get(s.ID)
	require.True(t, ok, "access slides the expiry")

	mock.Add(90 * time.Minute)
	assert.Equal(t, 1, st.CleanExpired())
	_, ok = st.Get(s.ID)
	assert.False(t, ok)
	_, ok = s.Hero()
	assert.False(t, ok)
}

func TestOpenHeroReplacesPrevious(t *testing.T) {
	st := NewStore(10, time.Hour)
	s, _ := st.Ensure("")

	first := s.OpenHero(featured("one", "two"))
	second := s.OpenHero(featured("three", "four"))

	got, ok := s.Hero()
	require.True(t, ok)
	assert.Same(t, second, got)

	first.Next()
	assert.False(t, first.State().Transitioning)
	cur, ok := got.Current()
	require.True(t, ok)
	assert.Equal(t, "three", cur.Title)
}

func TestStoreCloseClosesAll(t *testing.T) {
	st := NewStore(10, time.Hour)
	s, _ := st.Ensure("")
	s.OpenHero(featured("one", "two"))

	st.Close()

	assert.Equal(t, 0, st.Len())
	_, ok := s.Hero()
	assert.False(t, ok)

	hero := s.OpenHero(featured("x", "y"))
	hero.Next()
	assert.False(t, hero.State().Transitioning, "closed session mounts inert carousels")
}
