// Package remote implements the remote session stores that local sessions
// are synchronised with
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/monotimer/internal/models"
)

const (
	sessionsPath = "/rest/v1/sessions"
	maxErrorBody = 512
)

// HTTP is a remote store backed by a PostgREST endpoint such as the Supabase
// REST API.
type HTTP struct {
	client  *http.Client
	tokens  TokenSource
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// HTTPOption configures an HTTP store.
type HTTPOption func(*HTTP)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = c
	}
}

// WithHTTPLogger sets the logger.
func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(h *HTTP) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHTTP returns a REST remote store rooted at baseURL.
func NewHTTP(
	baseURL, apiKey string,
	tokens TokenSource,
	opts ...HTTPOption,
) *HTTP {
	h := &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		tokens:  tokens,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// GetSessions fetches the remote sessions within the inclusive bounds,
// newest first.
func (h *HTTP) GetSessions(
	ctx context.Context,
	from, to *time.Time,
) ([]models.Session, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "start_at.desc")

	if from != nil {
		q.Add("start_at", "gte."+from.UTC().Format(time.RFC3339))
	}

	if to != nil {
		q.Add("end_at", "lte."+to.UTC().Format(time.RFC3339))
	}

	creds, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	if creds.UserID != "" {
		q.Set("user_id", "eq."+creds.UserID)
	}

	var dtos []models.SessionDTO

	if err := h.do(ctx, creds, http.MethodGet, q, nil, &dtos); err != nil {
		return nil, err
	}

	sessions, err := models.SessionsFromDTOs(dtos)
	if err != nil {
		return nil, errDecodeResponse.Wrap(err)
	}

	return sessions, nil
}

// Save upserts a session on the remote.
func (h *HTTP) Save(ctx context.Context, s models.Session) error {
	creds, err := h.tokens.Token(ctx)
	if err != nil {
		return err
	}

	dto := s.ToDTO()
	if creds.UserID != "" {
		dto.UserID = &creds.UserID
	}

	body, err := json.Marshal([]models.SessionDTO{dto})
	if err != nil {
		return err
	}

	return h.do(ctx, creds, http.MethodPost, nil, body, nil)
}

// Delete removes a session from the remote.
func (h *HTTP) Delete(ctx context.Context, id uuid.UUID) error {
	creds, err := h.tokens.Token(ctx)
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("id", "eq."+id.String())

	return h.do(ctx, creds, http.MethodDelete, q, nil, nil)
}

// Close is a no-op.
func (h *HTTP) Close() error {
	return nil
}

func (h *HTTP) do(
	ctx context.Context,
	creds Credentials,
	method string,
	query url.Values,
	body []byte,
	out any,
) error {
	endpoint := h.baseURL + sessionsPath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errRequest.Fmt(method, sessionsPath).Wrap(err)
	}

	bearer := creds.AccessToken
	if bearer == "" {
		bearer = h.apiKey
	}

	req.Header.Set("apikey", h.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	}

	start := time.Now()

	resp, err := h.client.Do(req)
	if err != nil {
		return errRequest.Fmt(method, sessionsPath).Wrap(err)
	}
	defer resp.Body.Close()

	h.logger.DebugContext(
		ctx,
		"remote request",
		slog.String("method", method),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{
			Method: method,
			URL:    sessionsPath,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errDecodeResponse.Wrap(fmt.Errorf("%s %s: %w", method, sessionsPath, err))
	}

	return nil
}
