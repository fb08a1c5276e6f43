package timer

import "github.com/ayoisaiah/monotimer/internal/models"

// Event is published to subscribers whenever the engine changes.
type Event interface {
	event()
}

// StateChanged is emitted on every state transition.
type StateChanged struct {
	Snapshot Snapshot
}

// Ticked is emitted once per second while running.
type Ticked struct {
	Snapshot Snapshot
}

// SessionCompleted is emitted when a finished interval has been handed to
// the session saver.
type SessionCompleted struct {
	Session models.Session
}

func (StateChanged) event()     {}
func (Ticked) event()           {}
func (SessionCompleted) event() {}
