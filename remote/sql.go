package remote

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/ayoisaiah/monotimer/internal/models"
)

// Drivers supported by SQL.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL DEFAULT '',
	session_type TEXT NOT NULL,
	start_at TEXT NOT NULL,
	end_at TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	tag TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_start ON sessions(user_id, start_at);
`

// SQL is a remote store backed by a shared SQLite or Postgres database.
// Timestamps are stored as UTC RFC 3339 text, which sorts chronologically.
type SQL struct {
	db     *sql.DB
	tokens TokenSource
	logger *slog.Logger
	driver string
}

// NewSQL opens the database and creates the sessions table if needed.
func NewSQL(
	ctx context.Context,
	driver, dsn string,
	tokens TokenSource,
	logger *slog.Logger,
) (*SQL, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, errUnknownBackend.Fmt(driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errOpenSQL.Fmt(driver).Wrap(err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errOpenSQL.Fmt(driver).Wrap(err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errOpenSQL.Fmt(driver).Wrap(err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQL{
		db:     db,
		driver: driver,
		tokens: tokens,
		logger: logger,
	}, nil
}

// Close closes the database.
func (s *SQL) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders into the driver's syntax.
func (s *SQL) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder

	n := 0

	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

func (s *SQL) userID(ctx context.Context) (string, error) {
	creds, err := s.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	return creds.UserID, nil
}

// GetSessions returns the user's sessions within the inclusive bounds,
// newest first.
func (s *SQL) GetSessions(
	ctx context.Context,
	from, to *time.Time,
) ([]models.Session, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, session_type, start_at, end_at, duration_minutes, tag, created_at
		FROM sessions WHERE user_id = ?`
	args := []any{userID}

	if from != nil {
		query += ` AND start_at >= ?`
		args = append(args, from.UTC().Format(time.RFC3339))
	}

	if to != nil {
		query += ` AND end_at <= ?`
		args = append(args, to.UTC().Format(time.RFC3339))
	}

	query += ` ORDER BY start_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, errQuery.Fmt("select").Wrap(err)
	}
	defer rows.Close()

	var dtos []models.SessionDTO

	for rows.Next() {
		var (
			dto       models.SessionDTO
			tag       sql.NullString
			createdAt sql.NullString
		)

		err := rows.Scan(
			&dto.ID,
			&dto.SessionType,
			&dto.StartAt,
			&dto.EndAt,
			&dto.DurationMinutes,
			&tag,
			&createdAt,
		)
		if err != nil {
			return nil, errQuery.Fmt("select").Wrap(err)
		}

		if tag.Valid {
			dto.Tag = &tag.String
		}

		if createdAt.Valid {
			dto.CreatedAt = &createdAt.String
		}

		dtos = append(dtos, dto)
	}

	if err := rows.Err(); err != nil {
		return nil, errQuery.Fmt("select").Wrap(err)
	}

	sessions, err := models.SessionsFromDTOs(dtos)
	if err != nil {
		return nil, errDecodeResponse.Wrap(err)
	}

	return sessions, nil
}

// Save upserts a session for the current user.
func (s *SQL) Save(ctx context.Context, sess models.Session) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}

	dto := sess.ToDTO()

	query := `INSERT INTO sessions
		(id, user_id, session_type, start_at, end_at, duration_minutes, tag, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			session_type = excluded.session_type,
			start_at = excluded.start_at,
			end_at = excluded.end_at,
			duration_minutes = excluded.duration_minutes,
			tag = excluded.tag`

	var tag sql.NullString
	if dto.Tag != nil {
		tag = sql.NullString{String: *dto.Tag, Valid: true}
	}

	_, err = s.db.ExecContext(
		ctx,
		s.rebind(query),
		dto.ID,
		userID,
		dto.SessionType,
		dto.StartAt,
		dto.EndAt,
		dto.DurationMinutes,
		tag,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return errQuery.Fmt("upsert").Wrap(err)
	}

	s.logger.DebugContext(ctx, "remote session saved", slog.String("id", dto.ID))

	return nil
}

// Delete removes one of the current user's sessions.
func (s *SQL) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		s.rebind(`DELETE FROM sessions WHERE id = ? AND user_id = ?`),
		id.String(),
		userID,
	)
	if err != nil {
		return errQuery.Fmt("delete").Wrap(err)
	}

	return nil
}
