package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/monotimer/internal/config"
	"github.com/ayoisaiah/monotimer/internal/osutil"
	"github.com/ayoisaiah/monotimer/internal/pathutil"
	"github.com/ayoisaiah/monotimer/internal/tracing"
	"github.com/ayoisaiah/monotimer/internal/ui"
	"github.com/ayoisaiah/monotimer/remote"
	"github.com/ayoisaiah/monotimer/store"
	"github.com/ayoisaiah/monotimer/syncer"
)

const shutdownTimeout = 5 * time.Second

// deps holds everything a command needs to read and write sessions.
type deps struct {
	cfg    *config.Config
	logger *slog.Logger
	tracer *tracing.Tracer
	local  *store.Client
	remote remote.Store
	sync   *syncer.Coordinator
	logOut io.WriteCloser
}

// loadConfig reads the config file, running the first-run prompt if needed,
// and applies the command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// newLogger returns a JSON logger that writes to a rotating file. The file
// also receives spans from the stdout trace exporter.
func newLogger(path string, level slog.Level) (*slog.Logger, io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, nil, err
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), out, nil
}

// setup loads the config and opens the stores. The remote store is skipped
// in offline mode.
func setup(ctx *cli.Context) (*deps, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	logger, logOut, err := newLogger(pathutil.LogFilePath(), level)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	rt := &deps{
		cfg:    cfg,
		logger: logger,
		logOut: logOut,
	}

	rt.tracer, err = tracing.New(ctx.Context, tracing.Config{
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		Output:      logOut,
		ServiceName: "monotimer",
		Version:     config.Version,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.local, err = store.NewClient(pathutil.DBFilePath())
	if err != nil {
		rt.Close()
		return nil, err
	}

	if !cfg.Offline() {
		rt.remote, err = remote.Open(ctx.Context, cfg.Sync, logger)
		if err != nil {
			rt.Close()
			return nil, err
		}
	}

	rt.sync = newCoordinator(rt)

	logger.Info(
		"monotimer started",
		slog.String("version", config.Version),
		slog.Bool("offline", rt.remote == nil),
		slog.String("config", cfg.String()),
	)

	return rt, nil
}

func newCoordinator(rt *deps) *syncer.Coordinator {
	return syncer.New(
		rt.local,
		rt.remote,
		syncer.WithLogger(rt.logger),
		syncer.WithTracer(rt.tracer),
		syncer.WithRemoteTimeout(rt.cfg.Sync.Timeout),
	)
}

// Close waits for detached remote writes, then releases every resource in
// reverse order of acquisition.
func (rt *deps) Close() error {
	var errs []error

	if rt.sync != nil {
		rt.sync.Wait()
	}

	if rt.remote != nil {
		errs = append(errs, rt.remote.Close())
	}

	if rt.local != nil {
		errs = append(errs, rt.local.Close())
	}

	if rt.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		errs = append(errs, rt.tracer.Shutdown(ctx))

		cancel()
	}

	if rt.logOut != nil {
		errs = append(errs, rt.logOut.Close())
	}

	return errors.Join(errs...)
}
