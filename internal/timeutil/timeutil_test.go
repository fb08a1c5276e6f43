package timeutil

import (
	"bytes"
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{-4, "00:00"},
	}

	for _, tc := range cases {
		if got := Clock(tc.seconds); got != tc.want {
			t.Errorf("Clock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestToKeyOrdersChronologically(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	earlier := time.Date(2025, 1, 1, 10, 0, 0, 500, time.UTC)
	later := time.Date(2025, 1, 1, 13, 30, 0, 0, loc) // 10:30 UTC

	if bytes.Compare(ToKey(earlier), ToKey(later)) >= 0 {
		t.Errorf("expected %s < %s", ToKey(earlier), ToKey(later))
	}

	if len(ToKey(earlier)) != len(ToKey(later)) {
		t.Error("keys must have a fixed width")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 9, 0, 1, 0, 0, time.UTC)
	c := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day")
	}

	if SameDay(a, c) {
		t.Error("expected different days")
	}
}
