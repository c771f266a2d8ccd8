package store

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type kvEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLKV is a SQLite backed key-value store.
type SQLKV struct {
	db *gorm.DB
}

// OpenSQLite opens the SQLite database at path and creates the key-value
// table if needed.
func OpenSQLite(path string) (*SQLKV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&kvEntry{})
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}

		return nil, err
	}

	return &SQLKV{db}, nil
}

func (s *SQLKV) Get(key string) (string, bool, error) {
	var entries []kvEntry

	result := s.db.Where(&kvEntry{Key: key}).Limit(1).Find(&entries)
	if result.Error != nil {
		return "", false, result.Error
	}

	if len(entries) == 0 {
		return "", false, nil
	}

	return entries[0].Value, true, nil
}

func (s *SQLKV) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
}

func (s *SQLKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
