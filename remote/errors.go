package remote

import (
	"fmt"

	"github.com/ayoisaiah/monotimer/internal/apperr"
)

var (
	// ErrNotSignedIn is returned when no credentials are available.
	ErrNotSignedIn = &apperr.Error{
		Message: "not signed in: set sync.token or sync.user_id in the config file",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown sync backend: %s",
	}

	errRequest = &apperr.Error{
		Message: "%s %s failed",
	}

	errDecodeResponse = &apperr.Error{
		Message: "decoding remote sessions failed",
	}

	errOpenSQL = &apperr.Error{
		Message: "opening %s remote store failed",
	}

	errQuery = &apperr.Error{
		Message: "remote %s query failed",
	}
)

// StatusError reports a non-2xx response from the remote REST API.
type StatusError struct {
	Method string
	URL    string
	Body   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(
		"%s %s: unexpected status %d: %s",
		e.Method,
		e.URL,
		e.Code,
		e.Body,
	)
}
