// Package timer implements the countdown state machine behind every focus
// and break run
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/monotimer/activity"
	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/notify"
)

// SessionSaver receives every finished interval. It must not call back into
// the engine.
type SessionSaver interface {
	SaveSession(ctx context.Context, s models.Session) error
}

// Engine is the timer state machine: Idle, Running, Paused, Completed. All
// mutations are serialized by a single mutex that the tick loop and the
// auto-transition also take. Every transition bumps gen, so a tick or
// transition scheduled for an earlier run is dropped.
type Engine struct {
	ctx        context.Context
	clock      Clock
	saver      SessionSaver
	publisher  activity.Publisher
	scheduler  notify.Scheduler
	logger     *slog.Logger
	tag        *string
	ticker     Ticker
	tickStop   chan struct{}
	transition Stopper
	subs       []chan Event
	snap       Snapshot

	transitionDelay time.Duration
	gen             uint64
	shortBreak      int
	closed          bool

	mu sync.Mutex
}

// New returns an idle engine that hands finished sessions to saver.
func New(saver SessionSaver, opts ...Option) *Engine {
	e := &Engine{
		ctx:             context.Background(),
		clock:           realClock{},
		saver:           saver,
		publisher:       activity.Nop{},
		scheduler:       notify.Nop{},
		logger:          slog.Default(),
		shortBreak:      models.ShortBreak.DefaultMinutes(),
		transitionDelay: time.Second,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Subscribe registers an observer. Events are dropped for a subscriber whose
// buffer is full.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Event, buffer)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		close(ch)
		return ch
	}

	e.subs = append(e.subs, ch)

	return ch
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snap
}

// Progress returns the completed fraction of the current run.
func (e *Engine) Progress() float64 {
	return e.Snapshot().Progress()
}

// Start begins a new run. Any run in progress is discarded without being
// saved.
func (e *Engine) Start(preset models.Preset, sessType models.SessionType) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || preset.Minutes <= 0 {
		return
	}

	e.startLocked(preset, sessType)
}

// Pause freezes a running countdown.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap.State != Running {
		return
	}

	e.stopTicksLocked()
	e.gen++
	e.snap.State = Paused

	e.publisher.Update(e.contentLocked())
	e.emitLocked(StateChanged{Snapshot: e.snap})
}

// Resume continues a paused countdown from where it stopped.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap.State != Paused {
		return
	}

	e.gen++
	e.snap.State = Running
	e.startTicksLocked()

	e.publisher.Update(e.contentLocked())
	e.emitLocked(StateChanged{Snapshot: e.snap})
}

// Stop abandons the current run without saving it.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
}

// SkipToBreak records the focus run so far as a session and starts a short
// break. It only applies to a focus run that is running or paused.
func (e *Engine) SkipToBreak() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap.SessionType != models.Focus ||
		(e.snap.State != Running && e.snap.State != Paused) {
		return
	}

	e.finishLocked()
	e.startLocked(models.NewPreset(e.shortBreak), models.ShortBreak)
}

// Close stops the engine and closes every subscriber channel. The engine
// ignores all calls afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.stopLocked()
	e.closed = true

	for _, ch := range e.subs {
		close(ch)
	}

	e.subs = nil
}

func (e *Engine) startLocked(preset models.Preset, sessType models.SessionType) {
	e.stopLocked()

	total := preset.Seconds()

	e.gen++
	e.snap = Snapshot{
		State:            Running,
		SessionType:      sessType,
		TotalSeconds:     total,
		RemainingSeconds: total,
		StartedAt:        e.clock.Now(),
		Preset:           preset,
	}

	e.startTicksLocked()

	e.publisher.Start(
		activity.Attributes{Preset: preset.Label},
		e.contentLocked(),
	)
	e.scheduler.ScheduleCompletion(
		sessType,
		time.Duration(total)*time.Second,
		preset.Label,
	)

	e.logger.Info(
		"timer started",
		slog.String("type", string(sessType)),
		slog.Int("minutes", preset.Minutes),
	)

	e.emitLocked(StateChanged{Snapshot: e.snap})
}

func (e *Engine) stopLocked() {
	e.stopTicksLocked()
	e.cancelTransitionLocked()
	e.gen++

	wasIdle := e.snap.State == Idle
	e.snap = Snapshot{State: Idle}

	e.scheduler.CancelAll()
	e.publisher.End(nil)

	if !wasIdle {
		e.emitLocked(StateChanged{Snapshot: e.snap})
	}
}

func (e *Engine) startTicksLocked() {
	e.stopTicksLocked()

	ticker := e.clock.NewTicker(time.Second)
	stop := make(chan struct{})

	e.ticker = ticker
	e.tickStop = stop

	go e.runTicks(e.gen, ticker, stop)
}

func (e *Engine) stopTicksLocked() {
	if e.tickStop == nil {
		return
	}

	close(e.tickStop)
	e.ticker.Stop()

	e.tickStop = nil
	e.ticker = nil
}

func (e *Engine) runTicks(gen uint64, ticker Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			e.mu.Lock()
			if gen == e.gen && e.snap.State == Running {
				e.tickLocked()
			}
			e.mu.Unlock()
		}
	}
}

// tick advances a running countdown by one second.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap.State != Running {
		return
	}

	e.tickLocked()
}

func (e *Engine) tickLocked() {
	if e.snap.RemainingSeconds > 0 {
		e.snap.RemainingSeconds--
	}

	e.emitLocked(Ticked{Snapshot: e.snap})

	if e.snap.RemainingSeconds == 0 {
		e.completeLocked()
	}
}

func (e *Engine) completeLocked() {
	e.stopTicksLocked()
	e.gen++

	sessType := e.snap.SessionType

	e.finishLocked()

	e.snap.State = Completed

	final := e.contentLocked()
	e.publisher.End(&final)

	e.emitLocked(StateChanged{Snapshot: e.snap})

	gen := e.gen
	e.transition = e.clock.AfterFunc(e.transitionDelay, func() {
		e.autoTransition(gen, sessType)
	})
}

// autoTransition follows a completed run: a focus run is followed by a short
// break, and a break returns the engine to idle.
func (e *Engine) autoTransition(gen uint64, sessType models.SessionType) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || gen != e.gen || e.snap.State != Completed {
		return
	}

	e.transition = nil

	if sessType == models.Focus {
		e.startLocked(models.NewPreset(e.shortBreak), models.ShortBreak)
		return
	}

	e.stopLocked()
}

func (e *Engine) cancelTransitionLocked() {
	if e.transition != nil {
		e.transition.Stop()
		e.transition = nil
	}
}

// finishLocked builds a session from the current run and hands it to the
// saver. Saver errors are logged; the engine always moves on.
func (e *Engine) finishLocked() {
	s := models.NewSession(
		e.snap.SessionType,
		e.snap.StartedAt,
		e.clock.Now(),
		e.tag,
	)

	if e.saver != nil {
		if err := e.saver.SaveSession(e.ctx, s); err != nil {
			e.logger.Error(
				"saving session failed",
				slog.String("id", s.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	e.logger.Info(
		"session recorded",
		slog.String("id", s.ID.String()),
		slog.String("type", string(s.Type)),
		slog.Int("minutes", s.DurationMinutes()),
	)

	e.emitLocked(SessionCompleted{Session: s})
}

func (e *Engine) contentLocked() activity.ContentState {
	now := e.clock.Now()

	return activity.ContentState{
		SessionType:      e.snap.SessionType,
		TotalSeconds:     e.snap.TotalSeconds,
		RemainingSeconds: e.snap.RemainingSeconds,
		EndTime:          now.Add(time.Duration(e.snap.RemainingSeconds) * time.Second),
		IsRunning:        e.snap.State == Running,
	}
}

func (e *Engine) emitLocked(ev Event) {
	for _, ch := range e.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
