package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayoisaiah/monotimer/activity"
	"github.com/ayoisaiah/monotimer/notify"
)

// Option configures an Engine.
type Option func(*Engine)

// WithPublisher sets the live activity publisher.
func WithPublisher(p activity.Publisher) Option {
	return func(e *Engine) {
		e.publisher = p
	}
}

// WithScheduler sets the notification scheduler.
func WithScheduler(s notify.Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithShortBreak sets the length of the break that follows a focus run.
func WithShortBreak(minutes int) Option {
	return func(e *Engine) {
		if minutes > 0 {
			e.shortBreak = minutes
		}
	}
}

// WithAutoTransitionDelay sets the pause between a completed run and the
// automatic next step.
func WithAutoTransitionDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.transitionDelay = d
		}
	}
}

// WithTag attaches a tag to every session the engine records.
func WithTag(tag *string) Option {
	return func(e *Engine) {
		e.tag = tag
	}
}

// WithContext sets the context passed to the session saver.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		e.ctx = ctx
	}
}
