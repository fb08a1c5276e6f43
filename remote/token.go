package remote

import (
	"context"
	"strings"
)

// Credentials identify the signed-in user to the remote store.
type Credentials struct {
	AccessToken string
	UserID      string
}

// TokenSource supplies the credentials for remote requests. Signing in and
// refreshing tokens happen outside of monotimer.
type TokenSource interface {
	Token(ctx context.Context) (Credentials, error)
}

// StaticToken is a TokenSource with fixed credentials taken from the config
// file.
type StaticToken Credentials

func (s StaticToken) Token(context.Context) (Credentials, error) {
	if strings.TrimSpace(s.AccessToken) == "" && strings.TrimSpace(s.UserID) == "" {
		return Credentials{}, ErrNotSignedIn
	}

	return Credentials(s), nil
}
