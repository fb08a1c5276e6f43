// Package config loads monotimer settings from the config file, command-line
// flags, and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/monotimer/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Goals         GoalsConfig        `mapstructure:"goals"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Sync          SyncConfig         `mapstructure:"sync"`
		Logging       LoggingConfig      `mapstructure:"logging"`
		Tracing       TracingConfig      `mapstructure:"tracing"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig holds preset and break lengths in minutes.
	TimerConfig struct {
		Presets             []int         `mapstructure:"presets"`
		DefaultPreset       int           `mapstructure:"default_preset"`
		ShortBreak          int           `mapstructure:"short_break"`
		LongBreak           int           `mapstructure:"long_break"`
		AutoTransitionDelay time.Duration `mapstructure:"auto_transition_delay"`
	}

	GoalsConfig struct {
		DailyMinutes int `mapstructure:"daily_minutes"`
	}

	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// SyncConfig selects and configures the remote session store.
	SyncConfig struct {
		Backend string        `mapstructure:"backend"`
		URL     string        `mapstructure:"url"`
		APIKey  string        `mapstructure:"api_key"`
		Token   string        `mapstructure:"token"`
		UserID  string        `mapstructure:"user_id"`
		DSN     string        `mapstructure:"dsn"`
		Timeout time.Duration `mapstructure:"timeout"`
		MaxAge  time.Duration `mapstructure:"max_age"`
	}

	LoggingConfig struct {
		Level string `mapstructure:"level"`
	}

	TracingConfig struct {
		Exporter string `mapstructure:"exporter"`
		Endpoint string `mapstructure:"endpoint"`
	}

	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds values that only come from the command line.
	CLIConfig struct {
		Tag         *string
		SessionType models.SessionType
		Preset      int
		Offline     bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

// Sync backends.
const (
	BackendNone     = "none"
	BackendHTTP     = "http"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Trace exporters.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Presets returns the configured focus presets.
func (c *Config) Presets() []models.Preset {
	if len(c.Timer.Presets) == 0 {
		return models.DefaultPresets
	}

	return models.PresetsFromMinutes(c.Timer.Presets)
}

// StartPreset resolves the preset and session type to start with. The CLI
// preset wins over the configured default, and breaks use their configured
// length unless a preset was given explicitly.
func (c *Config) StartPreset() (models.Preset, models.SessionType) {
	sessType := c.CLI.SessionType
	if !sessType.Valid() {
		sessType = models.Focus
	}

	minutes := c.CLI.Preset

	if minutes == 0 {
		switch sessType {
		case models.ShortBreak:
			minutes = c.Timer.ShortBreak
		case models.LongBreak:
			minutes = c.Timer.LongBreak
		default:
			minutes = c.Timer.DefaultPreset
		}
	}

	if minutes == 0 {
		minutes = sessType.DefaultMinutes()
	}

	return models.NewPreset(minutes), sessType
}

// Offline reports whether remote sync is disabled for this run.
func (c *Config) Offline() bool {
	return c.CLI.Offline || c.Sync.Backend == BackendNone || c.Sync.Backend == ""
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"presets=%v short_break=%d long_break=%d goal=%d sync=%s",
		c.Timer.Presets,
		c.Timer.ShortBreak,
		c.Timer.LongBreak,
		c.Goals.DailyMinutes,
		c.Sync.Backend,
	)
}
