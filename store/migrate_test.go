package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/monotimer/internal/models"
)

func TestMigrateRekeysLegacySessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	start := time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)
	s := models.NewSession(models.Focus, start, start.Add(25*time.Minute), nil)

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket(sessionBucket)
		if err != nil {
			return err
		}

		v, err := json.Marshal(s)
		if err != nil {
			return err
		}

		return b.Put([]byte(start.Format(time.RFC3339)), v)
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	err = c.db.View(func(tx *bolt.Tx) error {
		assert.Equal(t, sessionKey(&s), tx.Bucket(indexBucket).Get([]byte(s.ID.String())))
		assert.Equal(t, "1", string(tx.Bucket(metaBucket).Get(schemaKey)))
		assert.Nil(t, tx.Bucket(sessionBucket).Get([]byte(start.Format(time.RFC3339))))

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), s.ID))

	all, err := c.GetSessions(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
