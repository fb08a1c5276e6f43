package timer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ayoisaiah/monotimer/activity"
	"github.com/ayoisaiah/monotimer/internal/models"
)

type fakeClock struct {
	now     time.Time
	afters  []*fakeAfter
	tickers []*fakeTicker
	mu      sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTicker{ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, t)

	return t
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()

	a := &fakeAfter{clock: c, at: c.now.Add(d), f: f}
	c.afters = append(c.afters, a)

	return a
}

// Advance moves the clock forward and runs every due function.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)

	var due []*fakeAfter

	for _, a := range c.afters {
		if !a.done && !a.at.After(c.now) {
			a.done = true
			due = append(due, a)
		}
	}
	c.mu.Unlock()

	for _, a := range due {
		a.f()
	}
}

func (c *fakeClock) lastTicker() *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tickers[len(c.tickers)-1]
}

type fakeAfter struct {
	at    time.Time
	clock *fakeClock
	f     func()
	done  bool
}

func (a *fakeAfter) Stop() bool {
	a.clock.mu.Lock()
	defer a.clock.mu.Unlock()

	wasPending := !a.done
	a.done = true

	return wasPending
}

type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {}

type recordingSaver struct {
	err      error
	sessions []models.Session
	mu       sync.Mutex
}

func (r *recordingSaver) SaveSession(_ context.Context, s models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = append(r.sessions, s)

	return r.err
}

func (r *recordingSaver) saved() []models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Session(nil), r.sessions...)
}

type recordingPublisher struct {
	final   *activity.ContentState
	calls   []string
	updates []activity.ContentState
	mu      sync.Mutex
}

func (p *recordingPublisher) Start(_ activity.Attributes, s activity.ContentState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, "start")
	p.updates = append(p.updates, s)
}

func (p *recordingPublisher) Update(s activity.ContentState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, "update")
	p.updates = append(p.updates, s)
}

func (p *recordingPublisher) End(final *activity.ContentState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if final == nil {
		p.calls = append(p.calls, "end")
		return
	}

	p.calls = append(p.calls, "end-final")
	p.final = final
}

func (p *recordingPublisher) last() activity.ContentState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.updates[len(p.updates)-1]
}

type scheduled struct {
	sessType models.SessionType
	label    string
	fireIn   time.Duration
}

type recordingScheduler struct {
	scheduled []scheduled
	cancelled int
	mu        sync.Mutex
}

func (s *recordingScheduler) ScheduleCompletion(t models.SessionType, fireIn time.Duration, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduled = append(s.scheduled, scheduled{t, label, fireIn})
}

func (s *recordingScheduler) Cancel(models.SessionType) {}

func (s *recordingScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelled++
}

var errSaveFailed = errors.New("disk full")
