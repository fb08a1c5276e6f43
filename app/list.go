package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/internal/ui"
	"github.com/ayoisaiah/monotimer/stats"
)

const noSessionsMsg = "No sessions found for the specified time range"

func dateFormat(clock24 bool) string {
	if clock24 {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// printSessionsTable prints a session table to w.
func printSessionsTable(w io.Writer, sessions []models.Session, clock24 bool) error {
	tableBody := make([][]string, 0, len(sessions)+1)

	tableBody = append(tableBody, []string{
		"#", "ID", "TYPE", "START DATE", "END DATE", "DURATION", "TAG",
	})

	for i := range sessions {
		sess := &sessions[i]

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			sess.ID.String(),
			ui.SessionColor(sess.Type, sess.Type.DisplayName()),
			sess.StartAt.Local().Format(dateFormat(clock24)),
			sess.EndAt.Local().Format(dateFormat(clock24)),
			stats.FormatMinutes(sess.DurationMinutes()),
			sess.TagValue(),
		})
	}

	return ui.PrintTable(tableBody, w)
}

// printSessionsJSON prints sessions in their wire format.
func printSessionsJSON(w io.Writer, sessions []models.Session) error {
	dtos := make([]models.SessionDTO, 0, len(sessions))
	for i := range sessions {
		dtos = append(dtos, sessions[i].ToDTO())
	}

	b, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listSessions prints out a table of sessions.
func listSessions(w io.Writer, sessions []models.Session, clock24 bool) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	return printSessionsTable(w, sessions, clock24)
}
