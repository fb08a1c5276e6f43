package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/stats"
	"github.com/ayoisaiah/monotimer/syncer"
	"github.com/ayoisaiah/monotimer/timer"
)

type (
	timerMsg struct {
		event timer.Event
	}

	syncMsg struct {
		result syncer.SyncFinished
	}
)

// model is the bubbletea view over a timer engine. All timer state lives in
// the engine; the model only mirrors the latest snapshot.
type model struct {
	ctx      context.Context
	engine   *timer.Engine
	sync     *syncer.Coordinator
	logger   *slog.Logger
	events   <-chan timer.Event
	results  <-chan syncer.SyncFinished
	now      func() time.Time
	styles   styles
	help     help.Model
	progress progress.Model
	preset   models.Preset
	sessType models.SessionType
	snap     timer.Snapshot
	status   string
	maxAge   time.Duration
	minutes  int
	sessions int
	clock24  bool
	failed   bool
}

type modelOptions struct {
	preset   models.Preset
	sessType models.SessionType
	maxAge   time.Duration
	clock24  bool
	dark     bool
}

func newModel(
	ctx context.Context,
	engine *timer.Engine,
	coord *syncer.Coordinator,
	logger *slog.Logger,
	opts modelOptions,
) *model {
	return &model{
		ctx:      ctx,
		engine:   engine,
		sync:     coord,
		logger:   logger,
		events:   engine.Subscribe(64),
		results:  coord.Subscribe(4),
		now:      time.Now,
		styles:   newStyles(opts.dark),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		preset:   opts.preset,
		sessType: opts.sessType,
		maxAge:   opts.maxAge,
		clock24:  opts.clock24,
	}
}

func waitForTimer(events <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}

		return timerMsg{event: ev}
	}
}

func waitForSync(results <-chan syncer.SyncFinished) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}

		return syncMsg{result: res}
	}
}

// syncCmd runs a foreground sync off the UI goroutine.
func (m *model) syncCmd() tea.Cmd {
	if m.sync.Offline() {
		return nil
	}

	return func() tea.Msg {
		m.sync.SyncOnForeground(m.ctx)
		return nil
	}
}

func (m *model) Init() tea.Cmd {
	m.engine.Start(m.preset, m.sessType)

	return tea.Batch(
		waitForTimer(m.events),
		waitForSync(m.results),
		m.syncCmd(),
	)
}

func (m *model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		switch m.engine.Snapshot().State {
		case timer.Running:
			m.engine.Pause()
		case timer.Paused:
			m.engine.Resume()
		case timer.Idle:
			m.engine.Start(m.preset, models.Focus)
		case timer.Completed:
		}

	case key.Matches(msg, defaultKeymap.skip):
		m.engine.SkipToBreak()

	case key.Matches(msg, defaultKeymap.stop):
		m.engine.Stop()

	case key.Matches(msg, defaultKeymap.quit):
		m.engine.Stop()

		return tea.Quit
	}

	return nil
}

func (m *model) handleTimerEvent(ev timer.Event) {
	switch ev := ev.(type) {
	case timer.StateChanged:
		m.snap = ev.Snapshot
	case timer.Ticked:
		m.snap = ev.Snapshot
	case timer.SessionCompleted:
		if ev.Session.Type == models.Focus {
			m.sessions++
			m.minutes += ev.Session.DurationMinutes()
		}
	}
}

func (m *model) handleSyncResult(res syncer.SyncFinished) {
	m.failed = !res.Success

	if res.Success {
		m.status = fmt.Sprintf(
			"synced %d sessions at %s",
			res.Count,
			m.now().Format(m.timeFormat()),
		)

		return
	}

	m.status = "sync failed, will retry later"
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case timerMsg:
		m.handleTimerEvent(msg.event)

		return m, waitForTimer(m.events)

	case syncMsg:
		m.handleSyncResult(msg.result)

		return m, waitForSync(m.results)

	case tea.FocusMsg:
		if m.sync.NeedsSync(m.maxAge) {
			return m, m.syncCmd()
		}

		return m, nil

	case tea.BlurMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	m.logger.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	return m, nil
}

func (m *model) timeFormat() string {
	if m.clock24 {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (m *model) headerView() string {
	var s strings.Builder

	s.WriteString(m.styles.session(m.snap.SessionType).Render(m.snap.SessionType.DisplayName()))

	switch m.snap.State {
	case timer.Paused:
		s.WriteString(m.styles.secondary.Render("[Paused]"))
	case timer.Completed:
		s.WriteString(m.styles.secondary.Render("[Completed]"))
	default:
		end := m.now().Add(time.Duration(m.snap.RemainingSeconds) * time.Second)
		s.WriteString(m.styles.hint.Render("until " + end.Format(m.timeFormat())))
	}

	return s.String()
}

func (m *model) footerView() string {
	var s strings.Builder

	summary := fmt.Sprintf(
		"%d focus sessions, %s focused this run",
		m.sessions,
		stats.FormatMinutes(m.minutes),
	)

	s.WriteString(m.styles.hint.Render(summary))

	if m.status != "" {
		style := m.styles.hint
		if m.failed {
			style = m.styles.failure
		}

		s.WriteString("\n" + style.Render(m.status))
	}

	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.stop,
		defaultKeymap.quit,
	}

	if m.snap.SessionType == models.Focus && m.snap.State != timer.Idle {
		bindings = []key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.skip,
			defaultKeymap.stop,
			defaultKeymap.quit,
		}
	}

	s.WriteString("\n\n" + m.help.ShortHelpView(bindings))

	return s.String()
}

func (m *model) idleView() string {
	var s strings.Builder

	s.WriteString(m.styles.main.Render("Timer stopped"))
	s.WriteString("\n\n" + m.styles.secondary.Render(
		fmt.Sprintf("Press space to start a %d minute focus session", m.preset.Minutes),
	))
	s.WriteString("\n\n" + m.footerView())

	return s.String()
}

func (m *model) View() string {
	if m.snap.State == timer.Idle {
		return m.styles.base.Render(m.idleView())
	}

	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(m.snap.TimeDisplay()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.snap.Progress()))
	s.WriteString("\n\n")
	s.WriteString(m.footerView())

	return m.styles.base.Render(s.String())
}
