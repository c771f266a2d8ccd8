package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/PolarBear-H/pokerpal/internal/osutil"
)

const kvBucket = "kv"

// BoltKV is a BoltDB backed key-value store. All keys live in a single
// bucket.
type BoltKV struct {
	db *bolt.DB
}

func (b *BoltKV) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(kvBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the life of the transaction
		value, found = string(v), true

		return nil
	})

	return value, found, err
}

func (b *BoltKV) Set(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Put([]byte(key), []byte(value))
	})
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// OpenBolt opens the BoltDB file at path, creating it and its bucket if they
// do not exist already.
func OpenBolt(path string) (*BoltKV, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(kvBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltKV{db}, nil
}
