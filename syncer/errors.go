package syncer

import "github.com/ayoisaiah/monotimer/internal/apperr"

var (
	// ErrNoRemote is returned by SyncNow when no remote store is configured.
	ErrNoRemote = &apperr.Error{
		Message: "no remote store is configured: set sync.backend in the config file",
	}

	errSyncFailed = &apperr.Error{
		Message: "syncing sessions from the remote store failed",
	}

	errReplaceLocal = &apperr.Error{
		Message: "replacing local sessions after sync failed",
	}
)
