package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := `DELETE FROM sessions WHERE id = ? AND user_id = ?`

	pg := &SQL{driver: DriverPostgres}
	assert.Equal(t, `DELETE FROM sessions WHERE id = $1 AND user_id = $2`, pg.rebind(q))

	lite := &SQL{driver: DriverSQLite}
	assert.Equal(t, q, lite.rebind(q))
}
