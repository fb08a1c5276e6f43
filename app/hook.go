package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/timer"
)

// sessionHook runs settings.cmd after every recorded session. Details of the
// session are passed through the environment.
type sessionHook struct {
	logger  *slog.Logger
	command string
}

// watch runs the hook for each completed session until events is closed.
func (h *sessionHook) watch(events <-chan timer.Event) {
	for ev := range events {
		c, ok := ev.(timer.SessionCompleted)
		if !ok {
			continue
		}

		if err := runSessionCmd(h.command, &c.Session); err != nil {
			h.logger.Error(
				"session command failed",
				slog.String("cmd", h.command),
				slog.Any("error", err),
			)
		}
	}
}

func sessionEnv(s *models.Session) []string {
	return []string{
		"MONOTIMER_SESSION_ID=" + s.ID.String(),
		"MONOTIMER_SESSION_TYPE=" + string(s.Type),
		"MONOTIMER_SESSION_MINUTES=" + strconv.Itoa(s.DurationMinutes()),
		"MONOTIMER_SESSION_TAG=" + s.TagValue(),
	}
}

func runSessionCmd(sessionCmd string, s *models.Session) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), sessionEnv(s)...)

	return cmd.Run()
}
