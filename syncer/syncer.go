// Package syncer mediates every read and write of sessions. The local store
// is written first and is the source of truth for reads; the remote store
// receives detached upserts and is mirrored back wholesale on sync.
package syncer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/internal/tracing"
	"github.com/ayoisaiah/monotimer/store"
)

// DefaultMaxAge is how old the last sync may get before NeedsSync reports
// true.
const DefaultMaxAge = 5 * time.Minute

const defaultRemoteTimeout = 10 * time.Second

// State reports whether a sync is in flight and when the last one
// succeeded.
type State struct {
	LastSyncAt *time.Time
	Syncing    bool
}

// SyncFinished is emitted after every sync attempt that was not dropped.
type SyncFinished struct {
	Err     error
	Count   int
	Success bool
}

// Coordinator fans session writes out to the local and remote stores and
// mirrors the remote set into the local store on sync.
type Coordinator struct {
	local   store.LocalRepository
	remote  store.Repository
	logger  *slog.Logger
	tracer  *tracing.Tracer
	now     func() time.Time
	subs    []chan SyncFinished
	state   State
	wg      sync.WaitGroup
	timeout time.Duration
	mu      sync.Mutex
}

// New returns a coordinator over local and remote. A nil remote puts the
// coordinator in offline mode.
func New(
	local store.LocalRepository,
	remote store.Repository,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		local:   local,
		remote:  remote,
		logger:  slog.Default(),
		tracer:  tracing.Nop(),
		now:     time.Now,
		timeout: defaultRemoteTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Offline reports whether the coordinator has no remote store.
func (c *Coordinator) Offline() bool {
	return c.remote == nil
}

// GetSessions reads from the local store only.
func (c *Coordinator) GetSessions(
	ctx context.Context,
	from, to *time.Time,
) ([]models.Session, error) {
	return c.local.GetSessions(ctx, from, to)
}

// GetAllSessions returns every local session, newest first.
func (c *Coordinator) GetAllSessions(ctx context.Context) ([]models.Session, error) {
	return store.GetAllSessions(ctx, c.local)
}

// SaveSession writes s to the local store and returns once that write is
// done. The remote upsert runs in the background and its failure is only
// logged.
func (c *Coordinator) SaveSession(ctx context.Context, s models.Session) error {
	if err := c.local.Save(ctx, s); err != nil {
		return err
	}

	c.detach(ctx, "remote.save", s.ID, func(ctx context.Context) error {
		return c.remote.Save(ctx, s)
	})

	return nil
}

// DeleteSession removes the session locally, then remotely in the
// background.
func (c *Coordinator) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := c.local.Delete(ctx, id); err != nil {
		return err
	}

	c.detach(ctx, "remote.delete", id, func(ctx context.Context) error {
		return c.remote.Delete(ctx, id)
	})

	return nil
}

// detach runs a remote write that outlives the caller's context.
func (c *Coordinator) detach(
	ctx context.Context,
	op string,
	id uuid.UUID,
	fn func(ctx context.Context) error,
) {
	if c.remote == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		ctx, span := c.tracer.StartSpan(ctx, op,
			attribute.String("session.id", id.String()),
		)

		err := fn(ctx)
		span.End(err)

		if err != nil {
			c.logger.Warn(
				"remote write failed, deferred to next sync",
				slog.String("op", op),
				slog.String("id", id.String()),
				slog.Any("error", err),
			)

			return
		}

		c.logger.Debug(
			"remote write done",
			slog.String("op", op),
			slog.String("id", id.String()),
		)
	}()
}

// SyncNow replaces the local store with the full remote session set. It
// returns nil immediately if a sync is already running. On failure the local
// store is left untouched.
func (c *Coordinator) SyncNow(ctx context.Context) (err error) {
	if c.remote == nil {
		return ErrNoRemote
	}

	c.mu.Lock()
	if c.state.Syncing {
		c.mu.Unlock()
		c.logger.Debug("sync already in flight, dropping request")

		return nil
	}

	c.state.Syncing = true
	c.mu.Unlock()

	var count int

	defer func() {
		c.finishSync(count, err)
	}()

	ctx, span := c.tracer.StartSpan(ctx, "sync.full_refresh")
	defer func() {
		span.SetCount(count)
		span.End(err)
	}()

	sessions, err := store.GetAllSessions(ctx, c.remote)
	if err != nil {
		return errSyncFailed.Wrap(err)
	}

	if err = c.local.ReplaceAll(ctx, sessions); err != nil {
		return errReplaceLocal.Wrap(err)
	}

	count = len(sessions)

	return nil
}

func (c *Coordinator) finishSync(count int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Syncing = false

	if err == nil {
		now := c.now()
		c.state.LastSyncAt = &now

		c.logger.Info("sync finished", slog.Int("sessions", count))
	} else {
		c.logger.Error("sync failed", slog.Any("error", err))
	}

	ev := SyncFinished{Success: err == nil, Count: count, Err: err}

	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SyncOnForeground runs SyncNow and only logs its error. Offline
// coordinators do nothing.
func (c *Coordinator) SyncOnForeground(ctx context.Context) {
	if c.remote == nil {
		return
	}

	if err := c.SyncNow(ctx); err != nil {
		c.logger.Warn("foreground sync failed", slog.Any("error", err))
	}
}

// State returns a copy of the sync state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.LastSyncAt != nil {
		t := *s.LastSyncAt
		s.LastSyncAt = &t
	}

	return s
}

// NeedsSync reports whether the coordinator has never synced or the last
// sync is older than maxAge. A maxAge of zero uses DefaultMaxAge.
func (c *Coordinator) NeedsSync(maxAge time.Duration) bool {
	if c.remote == nil {
		return false
	}

	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.LastSyncAt == nil {
		return true
	}

	return c.now().Sub(*c.state.LastSyncAt) > maxAge
}

// Subscribe returns a channel that receives every sync result. Results are
// dropped when the buffer is full.
func (c *Coordinator) Subscribe(buffer int) <-chan SyncFinished {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan SyncFinished, buffer)

	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()

	return ch
}

// Wait blocks until every detached remote write has returned.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
