// Package app wires the monotimer command-line interface
package app

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/monotimer/internal/config"
	"github.com/ayoisaiah/monotimer/internal/ui"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	ui.DisableStyling()
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
}

// Get retrieves the monotimer app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "monotimer",
		Usage: `
		Monotimer is a focus timer for the command-line. Sessions are recorded
		locally and mirrored to a remote store when one is configured.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a focus or break session (default command)",
				Flags:  append(startFlags(), offlineFlag),
				Action: startAction,
			},
			{
				Name:   "list",
				Usage:  "List recorded sessions",
				Flags:  []cli.Flag{sinceFlag, untilFlag, jsonFlag},
				Action: listAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more sessions by id",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:   "sync",
				Usage:  "Replace the local sessions with those in the remote store",
				Action: syncAction,
			},
			{
				Name:   "stats",
				Usage:  "Show focus totals, streaks, and progress towards the daily goal",
				Flags:  []cli.Flag{jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append(startFlags(), noColorFlag, offlineFlag),
		Action: startAction,
		Before: beforeAction,
	}
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	_, noColor := os.LookupEnv(envNoColor)
	_, monotimerNoColor := os.LookupEnv(envMonotimerNoColor)

	if noColor || monotimerNoColor || ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
