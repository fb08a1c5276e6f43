package syncer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/monotimer/internal/tracing"
)

// Option configures a Coordinator.
type Option func(c *Coordinator)

// WithLogger sets the logger for remote failures and sync results.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer wraps every sync and remote write in a span.
func WithTracer(t *tracing.Tracer) Option {
	return func(c *Coordinator) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithNow replaces the clock used to stamp LastSyncAt.
func WithNow(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// WithRemoteTimeout bounds each detached remote write.
func WithRemoteTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}
