// Package models defines the session entities shared by the timer, the
// stores, and the sync layer
package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionType represents the kind of interval being timed.
type SessionType string

const (
	Focus      SessionType = "focus"
	ShortBreak SessionType = "short_break"
	LongBreak  SessionType = "long_break"
)

// SessionTypes lists every session type in display order.
var SessionTypes = []SessionType{Focus, ShortBreak, LongBreak}

// ParseSessionType maps a raw value to a SessionType. Unknown values decode
// to Focus.
func ParseSessionType(s string) SessionType {
	switch SessionType(s) {
	case ShortBreak:
		return ShortBreak
	case LongBreak:
		return LongBreak
	default:
		return Focus
	}
}

// Valid reports whether t is one of the known session types.
func (t SessionType) Valid() bool {
	switch t {
	case Focus, ShortBreak, LongBreak:
		return true
	}

	return false
}

// IsBreak reports whether t is a break.
func (t SessionType) IsBreak() bool {
	return t == ShortBreak || t == LongBreak
}

// DisplayName returns the human readable name of the session type.
func (t SessionType) DisplayName() string {
	switch t {
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// DefaultMinutes returns the default length of the session type.
func (t SessionType) DefaultMinutes() int {
	switch t {
	case ShortBreak:
		return 5
	case LongBreak:
		return 10
	default:
		return 25
	}
}

// Session is one finalised focus or break interval. Sessions are values and
// are never modified after creation.
type Session struct {
	StartAt time.Time   `json:"start_at"`
	EndAt   time.Time   `json:"end_at"`
	Tag     *string     `json:"tag,omitempty"`
	Type    SessionType `json:"type"`
	ID      uuid.UUID   `json:"id"`
}

// NewSession creates a session with a fresh identifier. An end time earlier
// than the start is clamped to the start.
func NewSession(
	sessType SessionType,
	startAt, endAt time.Time,
	tag *string,
) Session {
	if endAt.Before(startAt) {
		endAt = startAt
	}

	return Session{
		ID:      uuid.New(),
		Type:    sessType,
		StartAt: startAt,
		EndAt:   endAt,
		Tag:     tag,
	}
}

// Duration is the elapsed time between the start and end of the session.
func (s Session) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// DurationSeconds returns the whole number of seconds in the session.
func (s Session) DurationSeconds() int {
	return int(s.Duration() / time.Second)
}

// DurationMinutes returns the whole number of minutes in the session.
func (s Session) DurationMinutes() int {
	return int(s.Duration() / time.Minute)
}

// TagValue returns the tag or an empty string.
func (s Session) TagValue() string {
	if s.Tag == nil {
		return ""
	}

	return *s.Tag
}
