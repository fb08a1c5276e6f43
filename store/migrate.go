package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/monotimer/internal/models"
)

const schemaVersion = 1

var schemaKey = []byte("schema_version")

// migrate upgrades the database to the current schema version.
func migrate(tx *bolt.Tx) error {
	meta := tx.Bucket(metaBucket)

	version, _ := strconv.Atoi(string(meta.Get(schemaKey)))
	if version >= schemaVersion {
		return nil
	}

	if err := rekeySessions(tx); err != nil {
		return errMigration.Fmt(schemaVersion).Wrap(err)
	}

	return meta.Put(schemaKey, []byte(strconv.Itoa(schemaVersion)))
}

// rekeySessions rewrites every session under its canonical key and rebuilds
// the id index. Entries are collected before writing since bbolt cursors are
// invalidated by modifications.
func rekeySessions(tx *bolt.Tx) error {
	bucket := tx.Bucket(sessionBucket)

	type entry struct {
		key []byte
		s   models.Session
	}

	var entries []entry

	err := bucket.ForEach(func(k, v []byte) error {
		var s models.Session

		if err := json.Unmarshal(v, &s); err != nil {
			return errCorruptSession.Fmt(string(k)).Wrap(err)
		}

		entries = append(entries, entry{key: bytes.Clone(k), s: s})

		return nil
	})
	if err != nil {
		return err
	}

	index := tx.Bucket(indexBucket)

	for i := range entries {
		e := &entries[i]

		key := sessionKey(&e.s)

		if !bytes.Equal(e.key, key) {
			if err := bucket.Delete(e.key); err != nil {
				return err
			}

			if err := putSession(tx, &e.s); err != nil {
				return err
			}

			continue
		}

		if err := index.Put([]byte(e.s.ID.String()), key); err != nil {
			return err
		}
	}

	return nil
}
