package activity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/monotimer/internal/models"
)

var now = time.Date(2025, 5, 4, 9, 10, 0, 0, time.UTC)

func TestContentStateRunning(t *testing.T) {
	c := ContentState{
		SessionType:      models.Focus,
		TotalSeconds:     1500,
		RemainingSeconds: 1500,
		EndTime:          now.Add(15 * time.Minute),
		IsRunning:        true,
	}

	assert.Equal(t, "15:00", c.TimeDisplay(now))
	assert.InDelta(t, 0.4, c.Progress(now), 1e-9)

	assert.Equal(t, "00:00", c.TimeDisplay(now.Add(time.Hour)))
	assert.Equal(t, 1.0, c.Progress(now.Add(time.Hour)))
}

func TestContentStatePaused(t *testing.T) {
	c := ContentState{
		TotalSeconds:     300,
		RemainingSeconds: 61,
		EndTime:          now,
	}

	assert.Equal(t, "01:01", c.TimeDisplay(now.Add(time.Hour)))
	assert.InDelta(t, 239.0/300.0, c.Progress(now), 1e-9)
}

func TestContentStateZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, ContentState{}.Progress(now))
}

func TestStatusFileLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	f := NewStatusFile(path, nil)
	f.now = func() time.Time { return now }

	state := ContentState{
		SessionType:      models.Focus,
		TotalSeconds:     1500,
		RemainingSeconds: 1500,
		EndTime:          now.Add(25 * time.Minute),
		IsRunning:        true,
	}

	f.Start(Attributes{Preset: "25"}, state)

	s, err := ReadStatus(path, now)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "25", s.Attributes.Preset)
	assert.True(t, s.State.IsRunning)
	assert.Nil(t, s.DismissAt)

	state.IsRunning = false
	state.RemainingSeconds = 1200
	f.Update(state)

	s, err = ReadStatus(path, now)
	require.NoError(t, err)
	assert.False(t, s.State.IsRunning)
	assert.Equal(t, "25", s.Attributes.Preset, "attributes survive updates")

	final := state
	final.RemainingSeconds = 0
	f.End(&final)

	s, err = ReadStatus(path, now.Add(DismissAfter))
	require.NoError(t, err)
	require.NotNil(t, s, "final state stays visible until dismissal")

	s, err = ReadStatus(path, now.Add(DismissAfter+time.Second))
	require.NoError(t, err)
	assert.Nil(t, s)

	f.End(nil)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadStatusMissingFile(t *testing.T) {
	s, err := ReadStatus(filepath.Join(t.TempDir(), "none.json"), now)
	assert.NoError(t, err)
	assert.Nil(t, s)
}
