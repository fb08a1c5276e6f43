package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	minPresetMinutes = 1
	maxPresetMinutes = 720 // 12 hours
)

var validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if c.Goals.DailyMinutes <= 0 {
		return errInvalidGoal.Fmt(c.Goals.DailyMinutes)
	}

	if err := c.validateSync(); err != nil {
		return err
	}

	if err := c.validateObservability(); err != nil {
		return err
	}

	if c.Notifications.Sound != "" {
		if err := validateSound(c.Notifications.Sound); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateTimer() error {
	if len(c.Timer.Presets) == 0 {
		return errNoPresets
	}

	for _, p := range c.Timer.Presets {
		if p < minPresetMinutes || p > maxPresetMinutes {
			return errInvalidPreset.Fmt(p, minPresetMinutes, maxPresetMinutes)
		}
	}

	if c.CLI.Preset != 0 &&
		(c.CLI.Preset < minPresetMinutes || c.CLI.Preset > maxPresetMinutes) {
		return errInvalidPreset.Fmt(
			c.CLI.Preset,
			minPresetMinutes,
			maxPresetMinutes,
		)
	}

	longest := slices.Max(c.Timer.Presets)

	breaks := []struct {
		name    string
		minutes int
	}{
		{"short break", c.Timer.ShortBreak},
		{"long break", c.Timer.LongBreak},
	}

	for _, b := range breaks {
		if b.minutes < minPresetMinutes || b.minutes > maxPresetMinutes {
			return errInvalidBreak.Fmt(b.name, minPresetMinutes, maxPresetMinutes)
		}

		if b.minutes >= longest {
			return errBreakTooLong.Fmt(b.name, b.minutes, longest)
		}
	}

	if c.Timer.AutoTransitionDelay < 0 {
		return errInvalidDelay.Fmt(c.Timer.AutoTransitionDelay)
	}

	return nil
}

func (c *Config) validateSync() error {
	s := c.Sync

	var required map[string]string

	switch s.Backend {
	case "", BackendNone:
		return nil
	case BackendHTTP:
		required = map[string]string{"url": s.URL, "api_key": s.APIKey}
	case BackendSQLite, BackendPostgres:
		required = map[string]string{"dsn": s.DSN}
	default:
		return errUnknownBackend.Fmt(s.Backend)
	}

	// sorted so the reported field is stable
	fields := make([]string, 0, len(required))
	for k := range required {
		fields = append(fields, k)
	}

	slices.Sort(fields)

	for _, f := range fields {
		if strings.TrimSpace(required[f]) == "" {
			return errMissingSyncField.Fmt(s.Backend, f)
		}
	}

	if s.Timeout <= 0 {
		return errInvalidSyncTimeout.Fmt(s.Timeout)
	}

	return nil
}

func (c *Config) validateObservability() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	switch c.Tracing.Exporter {
	case "", ExporterNone, ExporterStdout, ExporterOTLP:
	default:
		return errUnknownExporter.Fmt(c.Tracing.Exporter)
	}

	return nil
}

// LogLevel parses the configured log level. An empty level means info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	if c.Logging.Level == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return level, errUnknownLogLevel.Fmt(c.Logging.Level)
	}

	return level, nil
}

func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sound)
	}

	return nil
}
