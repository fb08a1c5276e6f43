// Package activity publishes the live status of the running timer to an
// external surface
package activity

import (
	"math"
	"time"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/internal/timeutil"
)

// DismissAfter is how long a final state stays visible after a session ends.
const DismissAfter = 5 * time.Second

// Attributes are fixed for the lifetime of one activity.
type Attributes struct {
	Preset string `json:"preset"`
}

// ContentState is the part of an activity that changes while it runs.
type ContentState struct {
	EndTime          time.Time          `json:"end_time"`
	SessionType      models.SessionType `json:"session_type"`
	TotalSeconds     int                `json:"total_seconds"`
	RemainingSeconds int                `json:"remaining_seconds"`
	IsRunning        bool               `json:"is_running"`
}

// Publisher mirrors the timer to a live-status surface. Implementations must
// not block and must not call back into the timer.
type Publisher interface {
	Start(attrs Attributes, state ContentState)
	Update(state ContentState)
	// End ends the activity. A nil final state dismisses it immediately.
	End(final *ContentState)
}

// remaining is derived from the end time while running so that a surface can
// count down on its own between updates.
func (c ContentState) remaining(now time.Time) int {
	if !c.IsRunning {
		return c.RemainingSeconds
	}

	secs := int(math.Ceil(c.EndTime.Sub(now).Seconds()))
	if secs < 0 {
		return 0
	}

	return secs
}

// Progress returns the completed fraction in [0, 1].
func (c ContentState) Progress(now time.Time) float64 {
	if c.TotalSeconds <= 0 {
		return 0
	}

	p := float64(c.TotalSeconds-c.remaining(now)) / float64(c.TotalSeconds)

	return math.Min(math.Max(p, 0), 1)
}

// TimeDisplay returns the remaining time as MM:SS.
func (c ContentState) TimeDisplay(now time.Time) string {
	return timeutil.Clock(c.remaining(now))
}

// Nop discards every update.
type Nop struct{}

func (Nop) Start(Attributes, ContentState) {}

func (Nop) Update(ContentState) {}

func (Nop) End(*ContentState) {}
