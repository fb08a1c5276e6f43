package remote_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/monotimer/internal/config"
	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/remote"
)

func openSQLite(t *testing.T, userID string) remote.Store {
	t.Helper()

	s, err := remote.Open(context.Background(), config.SyncConfig{
		Backend: config.BackendSQLite,
		DSN:     filepath.Join(t.TempDir(), "remote.db"),
		UserID:  userID,
	}, nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSQLRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t, "u-1")

	start := time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)
	tag := "reading"

	older := models.NewSession(models.Focus, start, start.Add(25*time.Minute), &tag)
	newer := models.NewSession(models.ShortBreak, start.Add(30*time.Minute), start.Add(35*time.Minute), nil)

	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	got, err := s.GetSessions(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
	assert.Equal(t, "reading", got[1].TagValue())
	assert.Nil(t, got[0].Tag)
	assert.True(t, older.EndAt.Equal(got[1].EndAt))

	from := start.Add(time.Minute)

	got, err = s.GetSessions(ctx, &from, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t, "")

	start := time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)
	sess := models.NewSession(models.Focus, start, start.Add(10*time.Minute), nil)

	require.NoError(t, s.Save(ctx, sess))

	sess.EndAt = start.Add(20 * time.Minute)
	require.NoError(t, s.Save(ctx, sess))

	got, err := s.GetSessions(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 20, got[0].DurationMinutes())

	require.NoError(t, s.Delete(ctx, sess.ID))
	require.NoError(t, s.Delete(ctx, uuid.New()))

	got, err = s.GetSessions(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenNoneIsOffline(t *testing.T) {
	s, err := remote.Open(context.Background(), config.SyncConfig{Backend: config.BackendNone}, nil)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := remote.Open(context.Background(), config.SyncConfig{Backend: "ftp"}, nil)
	assert.Error(t, err)
}
