// Package notify schedules desktop notifications for the end of a timer
// run
package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/monotimer/internal/models"
)

// Scheduler schedules and cancels completion alerts. Implementations must not
// block and must not call back into the timer.
type Scheduler interface {
	ScheduleCompletion(t models.SessionType, fireIn time.Duration, label string)
	// Cancel removes every pending alert for the session type.
	Cancel(t models.SessionType)
	CancelAll()
}

// Content returns the title and body of the alert for a finished session.
func Content(t models.SessionType, label string) (title, body string) {
	switch t {
	case models.ShortBreak:
		return "Break Time Over!", "Ready to get back to work? Your break is over."
	case models.LongBreak:
		return "Break Time Over!", "Refreshed and ready! Time to start your next focus session."
	default:
		return "Focus Session Completed!", fmt.Sprintf(
			"Great work! Your %s-minute focus session is done. Time to take a break.",
			label,
		)
	}
}

// Identifier returns the id of an alert scheduled at the given instant.
func Identifier(t models.SessionType, at time.Time) string {
	return fmt.Sprintf("timer_%s_%d", t, at.UnixNano())
}

type stopper interface {
	Stop() bool
}

// Desktop shows alerts with the operating system's notification service.
type Desktop struct {
	pending   map[string]stopper
	afterFunc func(d time.Duration, f func()) stopper
	now       func() time.Time
	send      func(title, body string) error
	logger    *slog.Logger
	sound     *Sound
	mu        sync.Mutex
}

// Option configures a Desktop scheduler.
type Option func(*Desktop)

// WithSound plays the sound file after each alert.
func WithSound(path string) Option {
	return func(d *Desktop) {
		if path != "" {
			d.sound = NewSound(path)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Desktop) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDesktop returns a scheduler that sends desktop notifications.
func NewDesktop(opts ...Option) *Desktop {
	d := &Desktop{
		pending: make(map[string]stopper),
		afterFunc: func(dur time.Duration, f func()) stopper {
			return time.AfterFunc(dur, f)
		},
		now: time.Now,
		send: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Desktop) ScheduleCompletion(
	t models.SessionType,
	fireIn time.Duration,
	label string,
) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := Identifier(t, d.now())
	title, body := Content(t, label)

	d.pending[id] = d.afterFunc(fireIn, func() {
		d.mu.Lock()
		_, ok := d.pending[id]
		delete(d.pending, id)
		d.mu.Unlock()

		if ok {
			d.fire(id, title, body)
		}
	})

	d.logger.Debug(
		"notification scheduled",
		slog.String("id", id),
		slog.Duration("fire_in", fireIn),
	)
}

func (d *Desktop) fire(id, title, body string) {
	if err := d.send(title, body); err != nil {
		d.logger.Warn(
			"unable to display notification",
			slog.String("id", id),
			slog.Any("error", err),
		)
	}

	if d.sound == nil {
		return
	}

	if err := d.sound.Play(); err != nil {
		d.logger.Warn("unable to play alert sound", slog.Any("error", err))
	}
}

func (d *Desktop) Cancel(t models.SessionType) {
	d.mu.Lock()
	defer d.mu.Unlock()

	prefix := fmt.Sprintf("timer_%s_", t)

	for id, timer := range d.pending {
		if strings.HasPrefix(id, prefix) {
			timer.Stop()
			delete(d.pending, id)
		}
	}
}

func (d *Desktop) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, timer := range d.pending {
		timer.Stop()
		delete(d.pending, id)
	}
}

// Pending returns the ids of the alerts that have not fired yet.
func (d *Desktop) Pending() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]string, 0, len(d.pending))
	for id := range d.pending {
		ids = append(ids, id)
	}

	return ids
}

// Nop schedules nothing.
type Nop struct{}

func (Nop) ScheduleCompletion(models.SessionType, time.Duration, string) {}

func (Nop) Cancel(models.SessionType) {}

func (Nop) CancelAll() {}
