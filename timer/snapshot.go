package timer

import (
	"math"
	"time"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/internal/timeutil"
)

// State is the lifecycle state of the engine.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Snapshot is a copy of the engine's state at one instant.
type Snapshot struct {
	StartedAt        time.Time
	Preset           models.Preset
	SessionType      models.SessionType
	State            State
	TotalSeconds     int
	RemainingSeconds int
}

// Progress returns the completed fraction in [0, 1]. It is 0 when nothing is
// being timed.
func (s Snapshot) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}

	p := float64(s.TotalSeconds-s.RemainingSeconds) / float64(s.TotalSeconds)

	return math.Min(math.Max(p, 0), 1)
}

// TimeDisplay returns the remaining time as MM:SS.
func (s Snapshot) TimeDisplay() string {
	return timeutil.Clock(s.RemainingSeconds)
}
