// Package session keeps the per-visitor UI state: the hero carousel on the home page
// and the video controller of the livestream being watched.
package session

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/amaumene/cinetro/internal/cache"
	"github.com/amaumene/cinetro/internal/carousel"
	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/player"
	"github.com/amaumene/cinetro/pkg/logger"
)

// Player is the controller mounted for one livestream page.
type Player struct {
	StreamID   int
	Controller *player.Controller
	Remote     *Remote
}

// Session owns at most one hero carousel and one player at a time.
type Session struct {
	ID string

	mu     sync.Mutex
	clock  clock.Clock
	logger logger.Logger
	hero   *carousel.Carousel[models.Movie]
	player *Player
	closed bool
}

// OpenHero mounts a carousel over the featured movies, closing any previous one.
func (s *Session) OpenHero(featured []models.Movie) *carousel.Carousel[models.Movie] {
	hero := carousel.New(featured, carousel.WithClock(s.clock))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		hero.Close()
		return hero
	}
	if s.hero != nil {
		s.hero.Close()
	}
	s.hero = hero
	return hero
}

// Hero returns the mounted carousel, if any.
func (s *Session) Hero() (*carousel.Carousel[models.Movie], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero, s.hero != nil
}

// OpenPlayer mounts a controller for the stream. The controller of a previously
// opened stream is closed first.
func (s *Session) OpenPlayer(streamID int, source string) *Player {
	remote := NewRemote(source)
	p := &Player{
		StreamID: streamID,
		Remote:   remote,
		Controller: player.New(remote, remote,
			player.WithClock(s.clock),
			player.WithLogger(s.logger),
		),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		p.Controller.Close()
		return p
	}
	if s.player != nil {
		s.player.Controller.Close()
	}
	s.player = p
	return p
}

// Player returns the controller mounted for streamID.
func (s *Session) Player(streamID int) (*Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil || s.player.StreamID != streamID {
		return nil, false
	}
	return s.player, true
}

// Close unmounts everything the session owns.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.hero != nil {
		s.hero.Close()
		s.hero = nil
	}
	if s.player != nil {
		s.player.Controller.Close()
		s.player = nil
	}
}

// Store holds the sessions in an LRU with a sliding TTL. Evicted sessions are closed.
type Store struct {
	sessions *cache.LRUCache[*Session]
	clock    clock.Clock
	logger   logger.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the time source for session expiry and the timers sessions own.
func WithClock(c clock.Clock) StoreOption {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger handed to sessions.
func WithLogger(l logger.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store keeping at most capacity sessions idle for up to ttl.
func NewStore(capacity int, ttl time.Duration, opts ...StoreOption) *Store {
	st := &Store{
		sessions: cache.New[*Session](capacity, ttl),
		clock:    clock.New(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(st)
	}
	st.sessions.SetNow(st.clock.Now)
	st.sessions.OnEvict(func(id string, s *Session) {
		st.logger.Debugf("[Session] closing %s", id)
		s.Close()
	})
	return st
}

// Get returns the live session with the given id.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return st.sessions.Get(id)
}

// Ensure returns the session for id, creating a fresh one when id is unknown or
// expired. The boolean reports whether a new session was created.
func (st *Store) Ensure(id string) (*Session, bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	s := &Session{
		ID:     uuid.NewString(),
		clock:  st.clock,
		logger: st.logger,
	}
	st.sessions.Set(s.ID, s)
	return s, true
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}

// CleanExpired closes and removes idle sessions.
func (st *Store) CleanExpired() int {
	return st.sessions.CleanExpired()
}

// Close closes every session.
func (st *Store) Close() {
	st.sessions.Clear()
}
