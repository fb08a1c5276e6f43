package remote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ayoisaiah/monotimer/internal/config"
	"github.com/ayoisaiah/monotimer/store"
)

// Store is a remote repository that holds resources.
type Store interface {
	store.Repository
	Close() error
}

// Open returns the remote store selected by the sync config. The "none"
// backend yields a nil Store, which puts the app in offline mode.
func Open(
	ctx context.Context,
	cfg config.SyncConfig,
	logger *slog.Logger,
) (Store, error) {
	tokens := StaticToken{
		AccessToken: cfg.Token,
		UserID:      cfg.UserID,
	}

	switch cfg.Backend {
	case "", config.BackendNone:
		return nil, nil
	case config.BackendHTTP:
		return NewHTTP(
			cfg.URL,
			cfg.APIKey,
			tokens,
			WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			WithHTTPLogger(logger),
		), nil
	case config.BackendSQLite, config.BackendPostgres:
		driver := DriverSQLite
		if cfg.Backend == config.BackendPostgres {
			driver = DriverPostgres
		}

		s, err := NewSQL(ctx, driver, cfg.DSN, anonymous(tokens), logger)
		if err != nil {
			return nil, err
		}

		return s, nil
	default:
		return nil, errUnknownBackend.Fmt(cfg.Backend)
	}
}

// anonymous lets SQL stores run without credentials, scoping sessions to an
// empty user id.
func anonymous(t StaticToken) TokenSource {
	return tokenFunc(func(context.Context) (Credentials, error) {
		return Credentials(t), nil
	})
}

type tokenFunc func(context.Context) (Credentials, error)

func (f tokenFunc) Token(ctx context.Context) (Credentials, error) {
	return f(ctx)
}
