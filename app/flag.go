package app

import "github.com/urfave/cli/v2"

var (
	presetFlag = &cli.IntFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "Length of the session in minutes (default: timer.default_preset)",
	}

	typeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Session to start with: focus, short_break, or long_break",
		Value: "focus",
	}

	addTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Tag the sessions recorded during this run",
	}

	shortBreakFlag = &cli.IntFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	offlineFlag = &cli.BoolFlag{
		Name:  "offline",
		Usage: "Do not contact the remote store during this run",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions that started on or after this date (e.g. 'last monday')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions that ended on or before this date (e.g. 'yesterday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)

func startFlags() []cli.Flag {
	return []cli.Flag{
		presetFlag,
		typeFlag,
		addTagFlag,
		shortBreakFlag,
		disableNotificationFlag,
		sessionCmdFlag,
	}
}
