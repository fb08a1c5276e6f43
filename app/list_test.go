package app

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/monotimer/activity"
	"github.com/ayoisaiah/monotimer/internal/models"
)

func TestPrintSessionsJSON(t *testing.T) {
	s := testSession()

	var buf bytes.Buffer

	require.NoError(t, printSessionsJSON(&buf, []models.Session{s}))

	var dtos []models.SessionDTO

	require.NoError(t, json.Unmarshal(buf.Bytes(), &dtos))
	require.Len(t, dtos, 1)

	got, err := dtos[0].ToSession()
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, 25, got.DurationMinutes())
	assert.Equal(t, "reading", got.TagValue())
}

func TestPrintSessionsTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	s := testSession()

	var buf bytes.Buffer

	require.NoError(t, printSessionsTable(&buf, []models.Session{s}, true))

	out := buf.String()
	assert.Contains(t, out, s.ID.String())
	assert.Contains(t, out, "Focus")
	assert.Contains(t, out, "25m")
	assert.Contains(t, out, "reading")
}

func TestFormatStatus(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	now := time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)
	dismiss := now.Add(5 * time.Second)

	testCases := []struct {
		name     string
		status   activity.Status
		expected string
	}{
		{
			name: "running",
			status: activity.Status{State: activity.ContentState{
				SessionType:      models.Focus,
				TotalSeconds:     1500,
				RemainingSeconds: 1500,
				EndTime:          now.Add(10 * time.Minute),
				IsRunning:        true,
			}},
			expected: "Focus 10:00",
		},
		{
			name: "paused",
			status: activity.Status{State: activity.ContentState{
				SessionType:      models.ShortBreak,
				TotalSeconds:     300,
				RemainingSeconds: 90,
			}},
			expected: "Short Break 01:30 (paused)",
		},
		{
			name: "completed",
			status: activity.Status{
				DismissAt: &dismiss,
				State: activity.ContentState{
					SessionType:  models.Focus,
					TotalSeconds: 1500,
				},
			},
			expected: "Focus 00:00 (completed)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatStatus(&tc.status, now))
		})
	}
}
