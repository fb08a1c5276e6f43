package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/term"
)

const asciiLogo = `
┌┬┐┌─┐┌┐┌┌─┐┌┬┐┬┌┬┐┌─┐┬─┐
││││ │││││ │ │ ││││├┤ ├┬┘
┴ ┴└─┘┘└┘└─┘ ┴ ┴┴ ┴└─┘┴└─`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FocusMinutes      int
	ShortBreakMinutes int
	DailyGoalMinutes  int
}

// isTerminal is swapped out in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only runs when the config file does not exist yet and stdin is
// a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isTerminal() {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure monotimer for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'monotimer edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default focus length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("40 minutes", 40),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("50 minutes", 50),
				).
				Value(&opts.FocusMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Short break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
				).
				Value(&opts.ShortBreakMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Daily focus goal").
				Options(
					huh.NewOption("1 hour", 60),
					huh.NewOption("2 hours", 120).Selected(true),
					huh.NewOption("3 hours", 180),
					huh.NewOption("4 hours", 240),
				).
				Value(&opts.DailyGoalMinutes),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Timer.DefaultPreset = opts.FocusMinutes
	c.Timer.ShortBreak = opts.ShortBreakMinutes
	c.Goals.DailyMinutes = opts.DailyGoalMinutes
}
