package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/monotimer/internal/models"
)

type sessionDeleter interface {
	GetAllSessions(ctx context.Context) ([]models.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

func parseSessionIDs(args []string) ([]uuid.UUID, error) {
	if len(args) == 0 {
		return nil, errNoSessionIDs
	}

	ids := make([]uuid.UUID, 0, len(args))

	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, errInvalidSessionID.Fmt(arg)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// delSessions deletes the sessions with the given ids. Unless confirmed is
// set, it asks for confirmation before proceeding.
func delSessions(
	ctx context.Context,
	d sessionDeleter,
	ids []uuid.UUID,
	confirmed bool,
	in io.Reader,
	out io.Writer,
) error {
	all, err := d.GetAllSessions(ctx)
	if err != nil {
		return err
	}

	sessions := slices.DeleteFunc(all, func(s models.Session) bool {
		return !slices.Contains(ids, s.ID)
	})

	if len(sessions) == 0 {
		pterm.Info.Println("No sessions match the specified ids")
		return nil
	}

	if !confirmed {
		if err := printSessionsTable(out, sessions, false); err != nil {
			return err
		}

		warning := pterm.Warning.Sprint(
			"The above sessions will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(out, warning)

		reader := bufio.NewReader(in)

		_, _ = reader.ReadString('\n')
	}

	for i := range sessions {
		if err := d.DeleteSession(ctx, sessions[i].ID); err != nil {
			return err
		}
	}

	pterm.Fprintln(out, pterm.Success.Sprintf("Deleted %d sessions", len(sessions)))

	return nil
}
