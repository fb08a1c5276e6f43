package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/store"
)

var base = time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)

func session(startOffset, length time.Duration, t models.SessionType) models.Session {
	start := base.Add(startOffset)
	return models.NewSession(t, start, start.Add(length), nil)
}

func ids(sessions []models.Session) []uuid.UUID {
	out := make([]uuid.UUID, len(sessions))
	for i := range sessions {
		out[i] = sessions[i].ID
	}

	return out
}

func newBolt(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "monotimer.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c
}

func repositories(t *testing.T) map[string]store.LocalRepository {
	return map[string]store.LocalRepository{
		"bolt":   newBolt(t),
		"memory": store.NewMemory(),
	}
}

func TestGetSessionsOrderAndBounds(t *testing.T) {
	first := session(0, 25*time.Minute, models.Focus)
	second := session(30*time.Minute, 5*time.Minute, models.ShortBreak)
	third := session(24*time.Hour, 50*time.Minute, models.Focus)

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.SaveAll(ctx, repo, []models.Session{second, third, first}))

			all, err := store.GetAllSessions(ctx, repo)
			require.NoError(t, err)

			want := []uuid.UUID{third.ID, second.ID, first.ID}
			if diff := cmp.Diff(want, ids(all)); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}

			from := base.Add(30 * time.Minute)
			to := base.Add(35 * time.Minute)

			got, err := repo.GetSessions(ctx, &from, &to)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{second.ID}, ids(got), "bounds are inclusive")

			// the first session starts before from even though it ends inside
			from = base.Add(time.Minute)
			to = base.Add(2 * time.Hour)

			got, err = repo.GetSessions(ctx, &from, &to)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{second.ID}, ids(got))

			got, err = repo.GetSessions(ctx, nil, &to)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{second.ID, first.ID}, ids(got))
		})
	}
}

func TestSaveUpsertsByID(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s := session(0, 25*time.Minute, models.Focus)
			require.NoError(t, repo.Save(ctx, s))

			tag := "writing"
			s.Tag = &tag
			s.StartAt = s.StartAt.Add(time.Minute)
			require.NoError(t, repo.Save(ctx, s))

			all, err := store.GetAllSessions(ctx, repo)
			require.NoError(t, err)
			require.Len(t, all, 1)

			assert.Equal(t, "writing", all[0].TagValue())
			assert.True(t, all[0].StartAt.Equal(s.StartAt))
		})
	}
}

func TestDelete(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			a := session(0, time.Minute, models.Focus)
			b := session(time.Hour, time.Minute, models.Focus)

			require.NoError(t, store.SaveAll(ctx, repo, []models.Session{a, b}))
			require.NoError(t, repo.Delete(ctx, a.ID))
			require.NoError(t, repo.Delete(ctx, uuid.New()), "unknown ids are ignored")

			all, err := store.GetAllSessions(ctx, repo)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{b.ID}, ids(all))
		})
	}
}

func TestReplaceAll(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			old := session(0, time.Minute, models.Focus)
			require.NoError(t, repo.Save(ctx, old))

			fresh := []models.Session{
				session(time.Hour, 25*time.Minute, models.Focus),
				session(2*time.Hour, 5*time.Minute, models.ShortBreak),
			}

			require.NoError(t, repo.ReplaceAll(ctx, fresh))

			all, err := store.GetAllSessions(ctx, repo)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{fresh[1].ID, fresh[0].ID}, ids(all))

			// the index is rebuilt along with the data
			require.NoError(t, repo.Delete(ctx, fresh[0].ID))

			all, err = store.GetAllSessions(ctx, repo)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{fresh[1].ID}, ids(all))

			require.NoError(t, repo.ReplaceAll(ctx, nil))

			all, err = store.GetAllSessions(ctx, repo)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, repo.Save(ctx, session(0, time.Minute, models.Focus)), context.Canceled)

			_, err := repo.GetSessions(ctx, nil, nil)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monotimer.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	s := session(0, 25*time.Minute, models.Focus)
	require.NoError(t, c.Save(context.Background(), s))
	require.NoError(t, c.Close())

	c, err = store.NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	all, err := store.GetAllSessions(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, all, 1)

	assert.Equal(t, s.ID, all[0].ID)
	assert.Equal(t, s.Type, all[0].Type)
	assert.True(t, s.EndAt.Equal(all[0].EndAt))
}

func TestBoltLockedByAnotherClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monotimer.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	_, err = store.NewClient(path)
	assert.ErrorIs(t, err, store.ErrDatabaseLocked)
}
