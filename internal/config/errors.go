package config

import "github.com/ayoisaiah/monotimer/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidPreset = &apperr.Error{
		Message: "preset %d must be between %d and %d minutes",
	}

	errNoPresets = &apperr.Error{
		Message: "at least one focus preset is required",
	}

	errBreakTooLong = &apperr.Error{
		Message: "%s length (%d minutes) must be shorter than the longest preset (%d minutes)",
	}

	errInvalidBreak = &apperr.Error{
		Message: "%s length must be between %d and %d minutes",
	}

	errInvalidGoal = &apperr.Error{
		Message: "daily goal must be greater than zero, got %d",
	}

	errInvalidDelay = &apperr.Error{
		Message: "auto transition delay cannot be negative, got %v",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown sync backend: %q (must be none, http, sqlite, or postgres)",
	}

	errMissingSyncField = &apperr.Error{
		Message: "sync backend %q requires sync.%s to be set",
	}

	errInvalidSyncTimeout = &apperr.Error{
		Message: "sync timeout must be greater than zero, got %v",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level: %q",
	}

	errUnknownExporter = &apperr.Error{
		Message: "unknown trace exporter: %q (must be none, stdout, or otlp)",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "alert sound not found: %s",
	}

	errInvalidCLIPreset = &apperr.Error{
		Message: "invalid --preset value: %d",
	}

	errInvalidSessionType = &apperr.Error{
		Message: "unknown session type: %q (must be focus, short_break, or long_break)",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time (%s) must be earlier than the end time (%s)",
	}

	errInvalidDate = &apperr.Error{
		Message: "could not understand the date: %q",
	}
)
