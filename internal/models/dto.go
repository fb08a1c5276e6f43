package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionDTO is the wire representation of a session in the remote store.
type SessionDTO struct {
	ID              string  `json:"id"`
	UserID          *string `json:"user_id,omitempty"`
	SessionType     string  `json:"session_type"`
	StartAt         string  `json:"start_at"`
	EndAt           string  `json:"end_at"`
	DurationMinutes int     `json:"duration_minutes"`
	Tag             *string `json:"tag"`
	CreatedAt       *string `json:"created_at,omitempty"`
}

// ToDTO converts a session to its wire representation. Ownership fields are
// left empty for the remote adapter to fill in.
func (s Session) ToDTO() SessionDTO {
	return SessionDTO{
		ID:              s.ID.String(),
		SessionType:     string(s.Type),
		StartAt:         s.StartAt.UTC().Format(time.RFC3339),
		EndAt:           s.EndAt.UTC().Format(time.RFC3339),
		DurationMinutes: s.DurationMinutes(),
		Tag:             s.Tag,
	}
}

// ToSession decodes the wire representation. An unknown session type decodes
// to Focus, and a malformed id is replaced by a fresh one.
func (d SessionDTO) ToSession() (Session, error) {
	startAt, err := parseTimestamp(d.StartAt)
	if err != nil {
		return Session{}, errDecodeDTO.Fmt("start_at", d.ID).Wrap(err)
	}

	endAt, err := parseTimestamp(d.EndAt)
	if err != nil {
		return Session{}, errDecodeDTO.Fmt("end_at", d.ID).Wrap(err)
	}

	id, err := uuid.Parse(d.ID)
	if err != nil {
		id = uuid.New()
	}

	if endAt.Before(startAt) {
		endAt = startAt
	}

	return Session{
		ID:      id,
		Type:    ParseSessionType(d.SessionType),
		StartAt: startAt,
		EndAt:   endAt,
		Tag:     d.Tag,
	}, nil
}

// SessionsFromDTOs decodes a list of wire sessions.
func SessionsFromDTOs(dtos []SessionDTO) ([]Session, error) {
	sessions := make([]Session, 0, len(dtos))

	for i := range dtos {
		s, err := dtos[i].ToSession()
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, s)
	}

	return sessions, nil
}

// parseTimestamp accepts RFC 3339 with or without fractional seconds, which
// covers what Postgres timestamptz columns emit.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	t, err2 := time.Parse("2006-01-02T15:04:05.999999", s)
	if err2 == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
}
