package app

import "github.com/ayoisaiah/monotimer/internal/apperr"

var (
	errNoSessionIDs = &apperr.Error{
		Message: "specify the id of at least one session to delete (see the list command)",
	}

	errInvalidSessionID = &apperr.Error{
		Message: "%q is not a valid session id",
	}
)
