package config

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/monotimer/internal/models"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionType   string
	SessionCmd    string
	Tag           string
	Preset        int
	ShortBreak    int
	DisableNotify bool
	Offline       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// It must be applied after the config file has been read.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Preset:        ctx.Int("preset"),
			ShortBreak:    ctx.Int("short-break"),
			SessionType:   ctx.String("type"),
			Tag:           ctx.String("tag"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			Offline:       ctx.Bool("offline"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Preset < 0 {
		return errInvalidCLIPreset.Fmt(opts.Preset)
	}

	c.CLI.Preset = opts.Preset

	c.CLI.SessionType = models.Focus

	if t := strings.TrimSpace(opts.SessionType); t != "" {
		sessType := models.SessionType(t)
		if !sessType.Valid() {
			return errInvalidSessionType.Fmt(t)
		}

		c.CLI.SessionType = sessType
	}

	if tag := strings.TrimSpace(opts.Tag); tag != "" {
		c.CLI.Tag = &tag
	}

	if opts.ShortBreak > 0 {
		c.Timer.ShortBreak = opts.ShortBreak
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI.Offline = opts.Offline

	return nil
}
