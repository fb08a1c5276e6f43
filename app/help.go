package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

// helpText returns the template used by --help.
func helpText() string {
	section := func(title, body string) string {
		return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
	}

	description := section("DESCRIPTION", "\t\t{{.Usage}}")

	usage := section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	)

	version := section("VERSION", "\t\t{{.Version}}")

	commands := section(
		"COMMANDS",
		fmt.Sprintf(
			"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		),
	)

	options := section(
		"OPTIONS",
		fmt.Sprintf(
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
			pterm.Green("-{{$element}}"),
			pterm.Green("--{{.Name}} {{.DefaultText}}"),
		),
	)

	env := section("ENVIRONMENTAL VARIABLES", envHelp())

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/monotimer\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + version + commands + options + env + website
}

func envHelp() string {
	return `
MONOTIMER_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

MONOTIMER_ENV: when set, every config, data, and log file name gets this suffix (e.g. config_dev.yml).`
}
