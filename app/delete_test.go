package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/monotimer/store"
	"github.com/ayoisaiah/monotimer/syncer"
)

func TestParseSessionIDs(t *testing.T) {
	id := uuid.New()

	ids, err := parseSessionIDs([]string{id.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)

	_, err = parseSessionIDs(nil)
	assert.ErrorIs(t, err, errNoSessionIDs)

	_, err = parseSessionIDs([]string{id.String(), "nope"})
	assert.ErrorIs(t, err, errInvalidSessionID)
}

func TestDelSessions(t *testing.T) {
	keep := testSession()
	drop := testSession()

	testCases := []struct {
		name      string
		input     string
		confirmed bool
	}{
		{name: "confirmed with flag", confirmed: true},
		{name: "confirmed with enter", input: "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			local := store.NewMemory(keep, drop)
			coord := syncer.New(local, nil)

			var out bytes.Buffer

			err := delSessions(
				context.Background(),
				coord,
				[]uuid.UUID{drop.ID, uuid.New()},
				tc.confirmed,
				strings.NewReader(tc.input),
				&out,
			)
			require.NoError(t, err)

			remaining, err := coord.GetAllSessions(context.Background())
			require.NoError(t, err)
			require.Len(t, remaining, 1)
			assert.Equal(t, keep.ID, remaining[0].ID)

			if !tc.confirmed {
				assert.Contains(t, out.String(), drop.ID.String())
			}
		})
	}
}

func TestDelSessionsNoMatch(t *testing.T) {
	local := store.NewMemory(testSession())
	coord := syncer.New(local, nil)

	err := delSessions(
		context.Background(),
		coord,
		[]uuid.UUID{uuid.New()},
		true,
		strings.NewReader(""),
		&bytes.Buffer{},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, local.Len())
}

var _ sessionDeleter = (*syncer.Coordinator)(nil)

