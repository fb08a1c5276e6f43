package store

import "github.com/ayoisaiah/monotimer/internal/apperr"

var (
	// ErrDatabaseLocked is returned when another process holds the database.
	ErrDatabaseLocked = &apperr.Error{
		Message: "is monotimer already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "opening session database %s failed",
	}

	errCorruptSession = &apperr.Error{
		Message: "stored session %s could not be decoded",
	}

	errMigration = &apperr.Error{
		Message: "migrating session database to schema version %d failed",
	}
)
