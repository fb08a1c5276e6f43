package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/monotimer/internal/models"
)

// Memory is an in-process session store. It backs ephemeral runs and tests.
type Memory struct {
	sessions map[uuid.UUID]models.Session
	mu       sync.RWMutex
}

// NewMemory returns a Memory store seeded with sessions.
func NewMemory(sessions ...models.Session) *Memory {
	m := &Memory{
		sessions: make(map[uuid.UUID]models.Session, len(sessions)),
	}

	for i := range sessions {
		m.sessions[sessions[i].ID] = sessions[i]
	}

	return m
}

func (m *Memory) GetSessions(
	ctx context.Context,
	from, to *time.Time,
) ([]models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Session, 0, len(m.sessions))

	for id := range m.sessions {
		s := m.sessions[id]
		if InRange(&s, from, to) {
			out = append(out, s)
		}
	}

	SortNewestFirst(out)

	return out, nil
}

func (m *Memory) Save(ctx context.Context, s models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return nil
}

func (m *Memory) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	return nil
}

func (m *Memory) ReplaceAll(ctx context.Context, sessions []models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next := make(map[uuid.UUID]models.Session, len(sessions))
	for i := range sessions {
		next[sessions[i].ID] = sessions[i]
	}

	m.mu.Lock()
	m.sessions = next
	m.mu.Unlock()

	return nil
}

// Len returns the number of stored sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// SortNewestFirst orders sessions by descending start time. Ties are broken
// by id so the order is stable across stores.
func SortNewestFirst(sessions []models.Session) {
	slices.SortFunc(sessions, func(a, b models.Session) int {
		if c := b.StartAt.Compare(a.StartAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID.String(), a.ID.String())
	})
}
