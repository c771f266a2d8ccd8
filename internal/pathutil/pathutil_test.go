package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	p := &Paths{
		configFileName: "config.yml",
		dbFileName:     "pokerpal.db",
		logFileName:    "pokerpal.log",
	}

	p.applyEnvironmentOverrides("  ")
	assert.Equal(t, "pokerpal.db", p.dbFileName)

	p.applyEnvironmentOverrides("dev")
	assert.Equal(t, "config_dev.yml", p.configFileName)
	assert.Equal(t, "pokerpal_dev.db", p.dbFileName)
	assert.Equal(t, "pokerpal_dev.log", p.logFileName)
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "/data/pokerpal.sqlite", WithExtension("/data/pokerpal.db", ".sqlite"))
	assert.Equal(t, "/data/pokerpal.sqlite", WithExtension("/data/pokerpal", ".sqlite"))
}
