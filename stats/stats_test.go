package stats_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/stats"
)

var now = time.Date(2025, 5, 14, 15, 0, 0, 0, time.UTC)

func sessionAt(
	sessType models.SessionType,
	daysAgo, hour, mins int,
	tag string,
) models.Session {
	day := now.AddDate(0, 0, -daysAgo)
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)

	var t *string
	if tag != "" {
		t = &tag
	}

	return models.NewSession(sessType, start, start.Add(time.Duration(mins)*time.Minute), t)
}

func focusAt(daysAgo, hour, mins int) models.Session {
	return sessionAt(models.Focus, daysAgo, hour, mins, "")
}

func fixture() []models.Session {
	return []models.Session{
		sessionAt(models.Focus, 0, 9, 30, "thesis"),
		focusAt(0, 11, 45),
		sessionAt(models.ShortBreak, 0, 13, 5, ""),
		focusAt(1, 10, 25),
		focusAt(2, 10, 25),
		focusAt(4, 10, 50),
		focusAt(5, 10, 25),
		focusAt(6, 10, 25),
		focusAt(7, 10, 25),
		focusAt(40, 10, 60),
		focusAt(400, 10, 25),
	}
}

func TestCompute(t *testing.T) {
	r := stats.Compute(fixture(), now, 120)

	assert.Equal(t, stats.Summary{Sessions: 2, Minutes: 75}, r.Today)
	assert.Equal(t, stats.Summary{Sessions: 7, Minutes: 225}, r.Week)
	assert.Equal(t, stats.Summary{Sessions: 9, Minutes: 310}, r.Year)
	assert.Equal(t, 120, r.GoalMinutes)
	assert.InDelta(t, 0.625, r.GoalProgress, 1e-9)
	assert.Equal(t, 3, r.CurrentStreak)
	assert.Equal(t, 4, r.LongestStreak)
	assert.Equal(t, map[string]int{"thesis": 30, "uncategorized": 305}, r.Tags)
}

func TestComputeWeekDays(t *testing.T) {
	r := stats.Compute(fixture(), now, 120)

	require.Len(t, r.WeekDays, 7)

	var (
		labels  []string
		minutes []int
	)

	for _, b := range r.WeekDays {
		labels = append(labels, b.Label)
		minutes = append(minutes, b.Minutes)
	}

	assert.Equal(t, []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}, labels)
	assert.Equal(t, []int{25, 25, 50, 0, 25, 25, 75}, minutes)
}

func TestComputeYearMonths(t *testing.T) {
	r := stats.Compute(fixture(), now, 120)

	require.Len(t, r.YearMonths, 12)

	assert.Equal(t, "Jun", r.YearMonths[0].Label)
	assert.Equal(t, "May", r.YearMonths[11].Label)
	assert.Equal(t, 250, r.YearMonths[11].Minutes)
	assert.Equal(t, 60, r.YearMonths[10].Minutes)

	for _, b := range r.YearMonths[:10] {
		assert.Zero(t, b.Minutes, b.Label)
	}
}

func TestCurrentStreak(t *testing.T) {
	testCases := []struct {
		name     string
		sessions []models.Session
		expected int
	}{
		{
			name:     "no sessions",
			expected: 0,
		},
		{
			name:     "nothing today breaks the streak",
			sessions: []models.Session{focusAt(1, 9, 25), focusAt(2, 9, 25)},
			expected: 0,
		},
		{
			name:     "breaks do not count",
			sessions: []models.Session{sessionAt(models.LongBreak, 0, 9, 10, "")},
			expected: 0,
		},
		{
			name:     "several sessions on one day",
			sessions: []models.Session{focusAt(0, 9, 25), focusAt(0, 10, 25)},
			expected: 1,
		},
		{
			name:     "capped lookback",
			sessions: consecutiveDays(40),
			expected: 30,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := stats.Compute(tc.sessions, now, 120)

			assert.Equal(t, tc.expected, r.CurrentStreak)
		})
	}
}

func TestLongestStreakIsNotCapped(t *testing.T) {
	r := stats.Compute(consecutiveDays(40), now, 120)

	assert.Equal(t, 40, r.LongestStreak)
}

func TestGoalProgress(t *testing.T) {
	sessions := []models.Session{focusAt(0, 9, 50), focusAt(0, 10, 50)}

	assert.Equal(t, 1.0, stats.Compute(sessions, now, 60).GoalProgress)
	assert.Zero(t, stats.Compute(sessions, now, 0).GoalProgress)
	assert.Zero(t, stats.Compute(nil, now, 60).GoalProgress)
}

func TestComputeUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	// 22:30 UTC on the 13th is already the 14th at UTC+3.
	start := time.Date(2025, 5, 13, 22, 30, 0, 0, time.UTC)
	s := models.NewSession(models.Focus, start, start.Add(25*time.Minute), nil)

	r := stats.Compute([]models.Session{s}, now.In(loc), 120)

	assert.Equal(t, 25, r.Today.Minutes)
	assert.Equal(t, 1, r.CurrentStreak)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", stats.FormatMinutes(0))
	assert.Equal(t, "45m", stats.FormatMinutes(45))
	assert.Equal(t, "1h 15m", stats.FormatMinutes(75))
	assert.Equal(t, "2h 00m", stats.FormatMinutes(120))
}

func TestRender(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	r := stats.Compute(fixture(), now, 120)

	var buf bytes.Buffer

	require.NoError(t, stats.Render(&buf, &r, now))

	out := buf.String()
	assert.Contains(t, out, "Today: 1h 15m in 2 sessions")
	assert.Contains(t, out, "Current streak: 3 days")
	assert.Contains(t, out, "Longest streak: 4 days")
	assert.Contains(t, out, "thesis: 30m")
	assert.Contains(t, out, "Last 7 days (minutes)")
}

func TestRenderEmpty(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	r := stats.Compute(nil, now, 120)

	var buf bytes.Buffer

	require.NoError(t, stats.Render(&buf, &r, now))
	assert.NotContains(t, buf.String(), "Last 7 days (minutes)")
}

func consecutiveDays(n int) []models.Session {
	sessions := make([]models.Session, 0, n)
	for i := 0; i < n; i++ {
		sessions = append(sessions, focusAt(i, 9, 25))
	}

	return sessions
}
