// Package store defines the session repository contract and the local
// session stores
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/monotimer/internal/models"
)

// Repository is a session store. Local and remote stores share it.
type Repository interface {
	// GetSessions returns the sessions that start at or after from and end at
	// or before to, newest first. A nil bound is open.
	GetSessions(ctx context.Context, from, to *time.Time) ([]models.Session, error)
	// Save inserts the session, or replaces the stored session with the same
	// id.
	Save(ctx context.Context, s models.Session) error
	// Delete removes the session with the given id. Deleting an unknown id is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocalRepository is the on-device store. It is the source of truth for
// reads.
type LocalRepository interface {
	Repository
	// ReplaceAll swaps the entire contents of the store for sessions. The
	// store is either fully replaced or left untouched.
	ReplaceAll(ctx context.Context, sessions []models.Session) error
}

// BatchSaver is implemented by stores that can save many sessions at once.
type BatchSaver interface {
	SaveAll(ctx context.Context, sessions []models.Session) error
}

// SaveAll saves every session, in one batch when r supports it.
func SaveAll(ctx context.Context, r Repository, sessions []models.Session) error {
	if b, ok := r.(BatchSaver); ok {
		return b.SaveAll(ctx, sessions)
	}

	for i := range sessions {
		if err := r.Save(ctx, sessions[i]); err != nil {
			return err
		}
	}

	return nil
}

// GetAllSessions returns every stored session, newest first.
func GetAllSessions(ctx context.Context, r Repository) ([]models.Session, error) {
	return r.GetSessions(ctx, nil, nil)
}

// InRange reports whether s falls within the inclusive bounds.
func InRange(s *models.Session, from, to *time.Time) bool {
	if from != nil && s.StartAt.Before(*from) {
		return false
	}

	if to != nil && s.EndAt.After(*to) {
		return false
	}

	return true
}
