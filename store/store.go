package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/monotimer/internal/models"
	"github.com/ayoisaiah/monotimer/internal/timeutil"
)

var (
	sessionBucket = []byte("sessions")
	indexBucket   = []byte("index")
	metaBucket    = []byte("meta")
)

// Client is a BoltDB session store. Sessions are keyed by their UTC start
// time followed by their id, so a cursor walks them in chronological order.
// The index bucket maps each id to its key.
type Client struct {
	db *bolt.DB
}

// NewClient opens or creates the database at dbPath and brings its schema
// up to date.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{sessionBucket, indexBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db: db}, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrDatabaseLocked
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// Close releases the database file.
func (c *Client) Close() error {
	return c.db.Close()
}

func sessionKey(s *models.Session) []byte {
	key := timeutil.ToKey(s.StartAt)
	key = append(key, '_')

	return append(key, s.ID.String()...)
}

// GetSessions returns stored sessions within the inclusive bounds, newest
// first.
func (c *Client) GetSessions(
	ctx context.Context,
	from, to *time.Time,
) ([]models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sessions []models.Session

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionBucket).Cursor()

		var k, v []byte
		if from != nil {
			k, v = cur.Seek(timeutil.ToKey(*from))
		} else {
			k, v = cur.First()
		}

		var upper []byte
		if to != nil {
			// a session starting after the upper bound cannot end before it
			upper = timeutil.ToKey(*to)
		}

		for ; k != nil; k, v = cur.Next() {
			if upper != nil && bytes.Compare(keyTime(k), upper) > 0 {
				break
			}

			s, err := decodeSession(k, v)
			if err != nil {
				return err
			}

			if InRange(&s, from, to) {
				sessions = append(sessions, s)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Reverse(sessions)

	return sessions, nil
}

// Save upserts a session by id.
func (c *Client) Save(ctx context.Context, s models.Session) error {
	return c.SaveAll(ctx, []models.Session{s})
}

// SaveAll upserts many sessions in a single transaction.
func (c *Client) SaveAll(ctx context.Context, sessions []models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		for i := range sessions {
			if err := putSession(tx, &sessions[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a session by id.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket(indexBucket)

		idKey := []byte(id.String())

		key := index.Get(idKey)
		if key == nil {
			return nil
		}

		if err := tx.Bucket(sessionBucket).Delete(key); err != nil {
			return err
		}

		return index.Delete(idKey)
	})
}

// ReplaceAll swaps the stored sessions for the given set in one transaction.
func (c *Client) ReplaceAll(ctx context.Context, sessions []models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{sessionBucket, indexBucket} {
			if err := tx.DeleteBucket(name); err != nil &&
				!errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}

			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}

		for i := range sessions {
			if err := putSession(tx, &sessions[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

// keyTime returns the start time portion of a session key.
func keyTime(key []byte) []byte {
	if i := bytes.IndexByte(key, '_'); i >= 0 {
		return key[:i]
	}

	return key
}

func putSession(tx *bolt.Tx, s *models.Session) error {
	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	bucket := tx.Bucket(sessionBucket)
	index := tx.Bucket(indexBucket)

	idKey := []byte(s.ID.String())
	key := sessionKey(s)

	// the start time may have changed since the last save
	if old := index.Get(idKey); old != nil && !bytes.Equal(old, key) {
		if err := bucket.Delete(old); err != nil {
			return err
		}
	}

	if err := bucket.Put(key, value); err != nil {
		return err
	}

	return index.Put(idKey, key)
}

func decodeSession(key, value []byte) (models.Session, error) {
	var s models.Session

	if err := json.Unmarshal(value, &s); err != nil {
		return s, errCorruptSession.Fmt(string(key)).Wrap(err)
	}

	return s, nil
}
