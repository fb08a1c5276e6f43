package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/monotimer/activity"
	"github.com/ayoisaiah/monotimer/internal/config"
	"github.com/ayoisaiah/monotimer/internal/osutil"
	"github.com/ayoisaiah/monotimer/internal/pathutil"
	"github.com/ayoisaiah/monotimer/internal/ui"
	"github.com/ayoisaiah/monotimer/notify"
	"github.com/ayoisaiah/monotimer/stats"
	"github.com/ayoisaiah/monotimer/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envMonotimerNoColor = "MONOTIMER_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func newScheduler(rt *deps) notify.Scheduler {
	if !rt.cfg.Notifications.Enabled {
		return notify.Nop{}
	}

	return notify.NewDesktop(
		notify.WithLogger(rt.logger),
		notify.WithSound(rt.cfg.Notifications.Sound),
	)
}

// startAction runs the timer in the terminal until the user quits.
func startAction(ctx *cli.Context) error {
	rt, err := setup(ctx)
	if err != nil {
		return err
	}

	defer rt.Close()

	cfg := rt.cfg

	engine := timer.New(
		rt.sync,
		timer.WithContext(ctx.Context),
		timer.WithLogger(rt.logger),
		timer.WithPublisher(activity.NewStatusFile(pathutil.StatusFilePath(), rt.logger)),
		timer.WithScheduler(newScheduler(rt)),
		timer.WithShortBreak(cfg.Timer.ShortBreak),
		timer.WithAutoTransitionDelay(cfg.Timer.AutoTransitionDelay),
		timer.WithTag(cfg.CLI.Tag),
	)

	hookDone := make(chan struct{})

	hook := &sessionHook{logger: rt.logger, command: cfg.Settings.Cmd}

	go func() {
		defer close(hookDone)
		hook.watch(engine.Subscribe(16))
	}()

	preset, sessType := cfg.StartPreset()

	m := newModel(ctx.Context, engine, rt.sync, rt.logger, modelOptions{
		preset:   preset,
		sessType: sessType,
		maxAge:   cfg.Sync.MaxAge,
		clock24:  cfg.Settings.TwentyFourHour,
		dark:     cfg.Display.DarkTheme,
	})

	p := tea.NewProgram(m, tea.WithReportFocus())

	_, err = p.Run()

	engine.Close()
	<-hookDone

	return err
}

// listAction prints the sessions recorded within --since and --until.
func listAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx, time.Now())
	if err != nil {
		return err
	}

	rt, err := setup(ctx)
	if err != nil {
		return err
	}

	defer rt.Close()

	sessions, err := rt.sync.GetSessions(ctx.Context, filter.Since, filter.Until)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printSessionsJSON(config.Stdout, sessions)
	}

	return listSessions(config.Stdout, sessions, rt.cfg.Settings.TwentyFourHour)
}

// deleteAction deletes the sessions whose ids are passed as arguments.
func deleteAction(ctx *cli.Context) error {
	ids, err := parseSessionIDs(ctx.Args().Slice())
	if err != nil {
		return err
	}

	rt, err := setup(ctx)
	if err != nil {
		return err
	}

	defer rt.Close()

	return delSessions(
		ctx.Context,
		rt.sync,
		ids,
		ctx.Bool("yes"),
		config.Stdin,
		config.Stdout,
	)
}

// syncAction mirrors the remote store into the local store.
func syncAction(ctx *cli.Context) error {
	rt, err := setup(ctx)
	if err != nil {
		return err
	}

	defer rt.Close()

	spinner, _ := pterm.DefaultSpinner.Start("Syncing sessions...")

	if err := rt.sync.SyncNow(ctx.Context); err != nil {
		spinner.Fail("Sync failed")
		return err
	}

	sessions, err := rt.sync.GetAllSessions(ctx.Context)
	if err != nil {
		spinner.Fail("Sync failed")
		return err
	}

	spinner.Success(fmt.Sprintf("Synced %d sessions", len(sessions)))

	return nil
}

// statsAction prints focus statistics for today, the last week, and the
// last year.
func statsAction(ctx *cli.Context) error {
	rt, err := setup(ctx)
	if err != nil {
		return err
	}

	defer rt.Close()

	sessions, err := rt.sync.GetAllSessions(ctx.Context)
	if err != nil {
		return err
	}

	now := time.Now()
	report := stats.Compute(sessions, now, rt.cfg.Goals.DailyMinutes)

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	return stats.Render(config.Stdout, &report, now)
}

// statusAction prints the live timer status written by a running instance.
// It does not open the database, which the running instance holds.
func statusAction(_ *cli.Context) error {
	now := time.Now()

	status, err := activity.ReadStatus(pathutil.StatusFilePath(), now)
	if err != nil {
		return err
	}

	if status == nil {
		pterm.Info.Println("No timer is running")
		return nil
	}

	fmt.Fprintln(config.Stdout, formatStatus(status, now))

	return nil
}

func formatStatus(s *activity.Status, now time.Time) string {
	state := s.State

	text := fmt.Sprintf(
		"%s %s",
		ui.SessionColor(state.SessionType, state.SessionType.DisplayName()),
		state.TimeDisplay(now),
	)

	switch {
	case s.DismissAt != nil:
		text += " (completed)"
	case !state.IsRunning:
		text += " (paused)"
	}

	return text
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
