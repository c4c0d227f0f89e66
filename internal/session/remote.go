package session

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrNoSource is returned by Remote.Play when the stream has no video file.
var ErrNoSource = errors.New("stream has no video source")

// Command names understood by the page script.
const (
	CommandPlay              = "play"
	CommandPause             = "pause"
	CommandVolume            = "volume"
	CommandSeek              = "seek"
	CommandRequestFullscreen = "request_fullscreen"
	CommandExitFullscreen    = "exit_fullscreen"
)

// Command is one instruction the page applies to its <video> element.
type Command struct {
	Name  string  `json:"name"`
	Value float64 `json:"value,omitempty"`
}

// Remote stands in for the browser's video element and fullscreen surface. Calls
// made by the controller are queued as commands until the page drains them, and
// the page reports the fullscreen outcome back through SetFullscreen.
type Remote struct {
	mu         sync.Mutex
	source     string
	fullscreen bool
	commands   []Command
}

// NewRemote creates a remote element playing source.
func NewRemote(source string) *Remote {
	return &Remote{source: source}
}

// Source returns the video URL the element was created with.
func (r *Remote) Source() string {
	return r.source
}

func (r *Remote) Play() error {
	if r.source == "" {
		return ErrNoSource
	}
	r.push(Command{Name: CommandPlay})
	return nil
}

func (r *Remote) Pause() {
	r.push(Command{Name: CommandPause})
}

func (r *Remote) SetVolume(v float64) {
	r.push(Command{Name: CommandVolume, Value: v})
}

func (r *Remote) SetCurrentTime(t float64) {
	r.push(Command{Name: CommandSeek, Value: t})
}

// Active reports the last fullscreen state confirmed by the page.
func (r *Remote) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fullscreen
}

func (r *Remote) Request() error {
	r.push(Command{Name: CommandRequestFullscreen})
	return nil
}

func (r *Remote) Exit() error {
	r.push(Command{Name: CommandExitFullscreen})
	return nil
}

// SetFullscreen records a fullscreenchange reported by the page.
func (r *Remote) SetFullscreen(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fullscreen = active
}

// Drain returns the queued commands in order and empties the queue.
func (r *Remote) Drain() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmds := r.commands
	r.commands = nil
	if cmds == nil {
		cmds = []Command{}
	}
	return cmds
}

func (r *Remote) push(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}
