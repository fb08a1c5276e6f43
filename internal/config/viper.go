package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyPresets              = "timer.presets"
	keyDefaultPreset        = "timer.default_preset"
	keyShortBreak           = "timer.short_break"
	keyLongBreak            = "timer.long_break"
	keyAutoTransitionDelay  = "timer.auto_transition_delay"
	keyDailyGoal            = "goals.daily_minutes"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keySyncBackend          = "sync.backend"
	keySyncURL              = "sync.url"
	keySyncAPIKey           = "sync.api_key"
	keySyncToken            = "sync.token"
	keySyncUserID           = "sync.user_id"
	keySyncDSN              = "sync.dsn"
	keySyncTimeout          = "sync.timeout"
	keySyncMaxAge           = "sync.max_age"
	keyLogLevel             = "logging.level"
	keyTraceExporter        = "tracing.exporter"
	keyTraceEndpoint        = "tracing.endpoint"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// The config file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults. Values already present on c, such as those
// collected by the first-run prompt, take the place of the built-in defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyPresets, []int{25, 30, 35, 40, 45, 50})
	v.SetDefault(keyDefaultPreset, orDefault(c.Timer.DefaultPreset, 25))
	v.SetDefault(keyShortBreak, orDefault(c.Timer.ShortBreak, 5))
	v.SetDefault(keyLongBreak, orDefault(c.Timer.LongBreak, 10))
	v.SetDefault(keyAutoTransitionDelay, "1s")
	v.SetDefault(keyDailyGoal, orDefault(c.Goals.DailyMinutes, 120))
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, "")
	v.SetDefault(keySyncBackend, BackendNone)
	v.SetDefault(keySyncURL, "")
	v.SetDefault(keySyncAPIKey, "")
	v.SetDefault(keySyncToken, "")
	v.SetDefault(keySyncUserID, "")
	v.SetDefault(keySyncDSN, "")
	v.SetDefault(keySyncTimeout, "10s")
	v.SetDefault(keySyncMaxAge, "5m")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyTraceExporter, ExporterNone)
	v.SetDefault(keyTraceEndpoint, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
// Command-line values are preserved.
func loadViperConfig(v *viper.Viper, c *Config) error {
	cli := c.CLI

	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	c.CLI = cli

	return nil
}

func orDefault(val, def int) int {
	if val == 0 {
		return def
	}

	return val
}
