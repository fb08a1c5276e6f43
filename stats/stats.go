// Package stats computes focus statistics from recorded sessions
package stats

import (
	"slices"
	"time"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/internal/timeutil"
)

const (
	// streakLookback caps how many days back the current streak is counted.
	streakLookback = 30

	uncategorized = "uncategorized"
)

// Summary is the focus total for one reporting period.
type Summary struct {
	Sessions int `json:"sessions"`
	Minutes  int `json:"minutes"`
}

// Bucket is the focus total for one day or month of a chart.
type Bucket struct {
	Start   time.Time `json:"start"`
	Label   string    `json:"label"`
	Minutes int       `json:"minutes"`
}

// Report holds every figure shown by the stats command.
type Report struct {
	Tags          map[string]int `json:"tags"`
	WeekDays      []Bucket       `json:"week_days"`
	YearMonths    []Bucket       `json:"year_months"`
	Today         Summary        `json:"today"`
	Week          Summary        `json:"week"`
	Year          Summary        `json:"year"`
	GoalMinutes   int            `json:"goal_minutes"`
	GoalProgress  float64        `json:"goal_progress"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
}

// Compute builds a report for now from sessions. Only focus sessions count.
// Days are taken in now's location.
func Compute(sessions []models.Session, now time.Time, dailyGoal int) Report {
	focus := focusSessions(sessions, now.Location())

	today := timeutil.RoundToStart(now)
	weekAgo := now.AddDate(0, 0, -7)
	yearAgo := now.AddDate(-1, 0, 0)

	r := Report{
		GoalMinutes:   dailyGoal,
		Tags:          make(map[string]int),
		CurrentStreak: currentStreak(focus, today),
		LongestStreak: longestStreak(focus),
		WeekDays:      weekDays(focus, today),
		YearMonths:    yearMonths(focus, now),
	}

	for i := range focus {
		s := &focus[i]
		mins := s.DurationMinutes()

		if timeutil.SameDay(s.StartAt, today) {
			r.Today.add(mins)
		}

		if within(s.StartAt, weekAgo, now) {
			r.Week.add(mins)
		}

		if within(s.StartAt, yearAgo, now) {
			r.Year.add(mins)
		}

		tag := s.TagValue()
		if tag == "" {
			tag = uncategorized
		}

		r.Tags[tag] += mins
	}

	if dailyGoal > 0 {
		r.GoalProgress = min(float64(r.Today.Minutes)/float64(dailyGoal), 1)
	}

	return r
}

func (s *Summary) add(mins int) {
	s.Sessions++
	s.Minutes += mins
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// focusSessions returns the focus sessions with their times moved into loc.
func focusSessions(sessions []models.Session, loc *time.Location) []models.Session {
	out := make([]models.Session, 0, len(sessions))

	for i := range sessions {
		s := sessions[i]
		if s.Type != models.Focus {
			continue
		}

		s.StartAt = s.StartAt.In(loc)
		s.EndAt = s.EndAt.In(loc)
		out = append(out, s)
	}

	return out
}

// activeDays returns the distinct days with a focus session, oldest first.
func activeDays(sessions []models.Session) []time.Time {
	seen := make(map[time.Time]bool)

	var days []time.Time

	for i := range sessions {
		d := timeutil.RoundToStart(sessions[i].StartAt)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})

	return days
}

// currentStreak counts consecutive days with a focus session, ending today.
func currentStreak(sessions []models.Session, today time.Time) int {
	days := make(map[time.Time]bool)
	for _, d := range activeDays(sessions) {
		days[d] = true
	}

	var streak int

	for day := today; streak < streakLookback; day = day.AddDate(0, 0, -1) {
		if !days[day] {
			break
		}

		streak++
	}

	return streak
}

func longestStreak(sessions []models.Session) int {
	days := activeDays(sessions)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1

	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
			longest = max(longest, run)

			continue
		}

		run = 1
	}

	return longest
}

// weekDays returns the focus minutes for today and the six days before it,
// oldest first.
func weekDays(sessions []models.Session, today time.Time) []Bucket {
	buckets := make([]Bucket, 7)

	for i := range buckets {
		day := today.AddDate(0, 0, i-6)
		buckets[i] = Bucket{Start: day, Label: day.Format("Mon")}
	}

	for i := range sessions {
		day := timeutil.RoundToStart(sessions[i].StartAt)

		for j := range buckets {
			if buckets[j].Start.Equal(day) {
				buckets[j].Minutes += sessions[i].DurationMinutes()
				break
			}
		}
	}

	return buckets
}

// yearMonths returns the focus minutes for the current calendar month and
// the eleven before it, oldest first.
func yearMonths(sessions []models.Session, now time.Time) []Bucket {
	buckets := make([]Bucket, 12)
	current := timeutil.StartOfMonth(now)

	for i := range buckets {
		month := current.AddDate(0, i-11, 0)
		buckets[i] = Bucket{Start: month, Label: month.Format("Jan")}
	}

	for i := range sessions {
		month := timeutil.StartOfMonth(sessions[i].StartAt)

		for j := range buckets {
			if buckets[j].Start.Equal(month) {
				buckets[j].Minutes += sessions[i].DurationMinutes()
				break
			}
		}
	}

	return buckets
}
