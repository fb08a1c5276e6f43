package stats

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/monotimer/internal/timeutil"
	"github.com/ayoisaiah/monotimer/internal/ui"
)

const barChartChar = "▇"

// Render writes a human readable report to w.
func Render(w io.Writer, r *Report, now time.Time) error {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Focus report for %s", now.Format("January 02, 2006"))

	week, err := barChart("Last 7 days (minutes)", r.WeekDays)
	if err != nil {
		return err
	}

	year, err := barChart("Last 12 months (minutes)", r.YearMonths)
	if err != nil {
		return err
	}

	output := fmt.Sprint(
		header,
		summary(r),
		tags(r.Tags),
		week,
		year,
	)

	_, err = fmt.Fprintln(w, strings.TrimSpace(output))

	return err
}

// FormatMinutes renders a minute count as hours and minutes.
func FormatMinutes(total int) string {
	hrs, mins := timeutil.MinsToHoursAndMins(total)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

func summary(r *Report) string {
	var b strings.Builder

	b.WriteString(ui.Cyan("Summary") + "\n")

	fmt.Fprintf(&b, "Today: %s in %s sessions (%s of %s goal)\n",
		ui.Green(FormatMinutes(r.Today.Minutes)),
		ui.Green(r.Today.Sessions),
		ui.Green(fmt.Sprintf("%.0f%%", r.GoalProgress*100)),
		FormatMinutes(r.GoalMinutes),
	)
	fmt.Fprintf(&b, "Last 7 days: %s in %s sessions\n",
		ui.Green(FormatMinutes(r.Week.Minutes)),
		ui.Green(r.Week.Sessions),
	)
	fmt.Fprintf(&b, "Last 12 months: %s in %s sessions\n",
		ui.Green(FormatMinutes(r.Year.Minutes)),
		ui.Green(r.Year.Sessions),
	)
	fmt.Fprintf(&b, "Current streak: %s days\n", ui.Green(r.CurrentStreak))
	fmt.Fprintf(&b, "Longest streak: %s days\n", ui.Green(r.LongestStreak))

	return b.String()
}

func tags(totals map[string]int) string {
	if len(totals) == 0 {
		return ""
	}

	type tagTotal struct {
		name    string
		minutes int
	}

	sorted := make([]tagTotal, 0, len(totals))
	for k, v := range totals {
		sorted = append(sorted, tagTotal{k, v})
	}

	slices.SortFunc(sorted, func(a, b tagTotal) int {
		if c := cmp.Compare(b.minutes, a.minutes); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	var b strings.Builder

	b.WriteString("\n" + ui.Cyan("Tags") + "\n")

	for _, t := range sorted {
		fmt.Fprintf(&b, "%s: %s\n", t.name, ui.Green(FormatMinutes(t.minutes)))
	}

	return b.String()
}

func barChart(title string, buckets []Bucket) (string, error) {
	if !slices.ContainsFunc(buckets, func(b Bucket) bool { return b.Minutes > 0 }) {
		return "", nil
	}

	bars := make(pterm.Bars, 0, len(buckets))

	for _, bucket := range buckets {
		bars = append(bars, pterm.Bar{
			Label: bucket.Label,
			Value: bucket.Minutes,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return "", fmt.Errorf("rendering %s chart: %w", title, err)
	}

	return "\n" + ui.Cyan(title) + chart, nil
}
