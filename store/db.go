package store

import (
	"os"
	"path/filepath"

	"github.com/PolarBear-H/pokerpal/internal/osutil"
)

// Supported values for the store.driver setting.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// KV is a persistent store of string values under string keys. Every value
// pokerpal persists is JSON text or a plain scalar string.
type KV interface {
	// Get returns the value stored under key. The boolean is false if the
	// key has never been set.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Close releases the underlying database
	Close() error
}

// Open opens the key-value store at path using driver. An empty driver
// selects bbolt.
func Open(driver, path string) (KV, error) {
	if driver != DriverMemory {
		err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
		if err != nil {
			return nil, err
		}
	}

	switch driver {
	case "", DriverBolt:
		return OpenBolt(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemKV(), nil
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}
