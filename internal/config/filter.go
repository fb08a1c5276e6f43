package config

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/monotimer/internal/timeutil"
)

// FilterConfig bounds the sessions a listing or report looks at. A nil bound
// is open.
type FilterConfig struct {
	Since *time.Time
	Until *time.Time
}

// Filter builds a FilterConfig from the --since and --until flags, which
// accept natural language dates such as "yesterday" or "2 weeks ago".
func Filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	return newFilter(ctx.String("since"), ctx.String("until"), now)
}

func newFilter(since, until string, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{}

	if s := strings.TrimSpace(since); s != "" {
		t, err := parseDate(s, now)
		if err != nil {
			return nil, err
		}

		t = timeutil.RoundToStart(t)
		f.Since = &t
	}

	if u := strings.TrimSpace(until); u != "" {
		t, err := parseDate(u, now)
		if err != nil {
			return nil, err
		}

		// a bare date includes the whole day
		if t.Equal(timeutil.RoundToStart(t)) {
			t = timeutil.RoundToEnd(t)
		}

		f.Until = &t
	}

	if f.Since != nil && f.Until != nil && !f.Since.Before(*f.Until) {
		return nil, errInvalidDateRange.Fmt(
			f.Since.Format(time.DateTime),
			f.Until.Format(time.DateTime),
		)
	}

	return f, nil
}

func parseDate(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	d, err := dps.Parse(cfg, s)
	if err != nil || d.Time.IsZero() {
		return time.Time{}, errInvalidDate.Fmt(s)
	}

	return d.Time, nil
}
