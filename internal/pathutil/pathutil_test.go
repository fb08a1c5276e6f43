package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPathsEnvironmentSuffix(t *testing.T) {
	cases := []struct {
		env    string
		config string
		db     string
		status string
		log    string
	}{
		{"", "config.yml", "monotimer.db", "status.json", "monotimer.log"},
		{"  ", "config.yml", "monotimer.db", "status.json", "monotimer.log"},
		{
			"dev",
			"config_dev.yml",
			"monotimer_dev.db",
			"status_dev.json",
			"monotimer_dev.log",
		},
	}

	for _, tc := range cases {
		p := newPaths(tc.env)

		assert.Equal(t, "monotimer", p.configDir)
		assert.Equal(t, tc.config, p.configFileName)
		assert.Equal(t, tc.db, p.dbFileName)
		assert.Equal(t, tc.status, p.statusFileName)
		assert.Equal(t, tc.log, p.logFileName)
	}
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "bell", StripExtension("bell.ogg"))
	assert.Equal(t, "bell", StripExtension("bell"))
}
