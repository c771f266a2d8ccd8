// Package store persists session records and settings in a key-value store
// and keeps the in-memory record collection in step with it
package store

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/record"
)

const (
	keyScoreHistory = "scoreHistory"
	keyBlindLevels  = "blindLevelList"

	keyDefaultBreakTime   = "defaultBreakTime"
	keyDefaultBlindLevel  = "defaultBlindLevel"
	keyDefaultLocation    = "defaultLocation"
	keyDefaultPlayerCount = "defaultPlayerCount"
	keyDefaultBuyIn       = "defaultBuyIn"

	keyLanguage  = "language"
	keyCurrency  = "currency"
	keyStyleCode = "styleCode"
)

// Repository holds the record collection in memory, sorted by start date
// with the newest first, and persists it as a whole on every commit.
type Repository struct {
	kv      KV
	NewID   func() uuid.UUID
	records []models.Record
}

// NewRepository returns an empty Repository backed by kv. Call Load to read
// the persisted collection.
func NewRepository(kv KV) *Repository {
	return &Repository{
		kv:    kv,
		NewID: uuid.New,
	}
}

// Load replaces the in-memory collection with the persisted one. Legacy
// records without an id are given one and written back immediately so that
// ids stay stable across runs.
func (r *Repository) Load() error {
	data, ok, err := r.kv.Get(keyScoreHistory)
	if err != nil {
		return errRead.Fmt(keyScoreHistory).Wrap(err)
	}

	if !ok || strings.TrimSpace(data) == "" {
		r.records = nil
		return nil
	}

	records, migrated, err := decodeRecords([]byte(data), r.NewID)
	if err != nil {
		return errCorrupt.Fmt(keyScoreHistory).Wrap(err)
	}

	slog.Debug(
		"records loaded",
		slog.Int("count", len(records)),
		slog.Bool("migrated", migrated),
	)

	if migrated {
		return r.Commit(records)
	}

	r.records = records

	return nil
}

// Records returns a copy of the collection.
func (r *Repository) Records() []models.Record {
	return slices.Clone(r.records)
}

// Commit persists records as the new collection. The in-memory collection
// is replaced only after the write succeeds, so a failed commit leaves both
// copies as they were.
func (r *Repository) Commit(records []models.Record) error {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []models.Record{}
	}

	record.Sort(sorted)

	b, err := json.Marshal(sorted)
	if err != nil {
		return err
	}

	err = r.kv.Set(keyScoreHistory, string(b))
	if err != nil {
		slog.Error(
			"failed to persist records",
			slog.Int("count", len(sorted)),
			slog.Any("error", err),
		)

		return errPersist.Fmt("session records").Wrap(err)
	}

	r.records = sorted

	slog.Info("records committed", slog.Int("count", len(sorted)))

	return nil
}

// Import replaces the whole collection with the records in data. Nothing is
// changed unless every record decodes.
func (r *Repository) Import(data []byte) (int, error) {
	records, _, err := decodeRecords(data, r.NewID)
	if err != nil {
		return 0, errImport.Wrap(err)
	}

	err = r.Commit(records)
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

// Export returns the collection as indented JSON in the format accepted by
// Import.
func (r *Repository) Export() ([]byte, error) {
	records := r.records
	if records == nil {
		records = []models.Record{}
	}

	return json.MarshalIndent(records, "", "  ")
}

func (r *Repository) getString(key string) (string, error) {
	v, _, err := r.kv.Get(key)
	if err != nil {
		return "", errRead.Fmt(key).Wrap(err)
	}

	return v, nil
}

func (r *Repository) setStrings(pairs ...[2]string) error {
	for _, p := range pairs {
		err := r.kv.Set(p[0], p[1])
		if err != nil {
			return errPersist.Fmt(p[0]).Wrap(err)
		}
	}

	return nil
}

// BlindLevels returns the saved blind level list, or the default list if
// none has been saved.
func (r *Repository) BlindLevels() ([]models.BlindLevel, error) {
	data, ok, err := r.kv.Get(keyBlindLevels)
	if err != nil {
		return nil, errRead.Fmt(keyBlindLevels).Wrap(err)
	}

	if !ok || strings.TrimSpace(data) == "" {
		return slices.Clone(models.DefaultBlindLevels), nil
	}

	var levels []models.BlindLevel

	err = json.Unmarshal([]byte(data), &levels)
	if err != nil {
		return nil, errCorrupt.Fmt(keyBlindLevels).Wrap(err)
	}

	record.SortBlindLevels(levels)

	return levels, nil
}

func (r *Repository) SaveBlindLevels(levels []models.BlindLevel) error {
	if levels == nil {
		levels = []models.BlindLevel{}
	}

	b, err := json.Marshal(levels)
	if err != nil {
		return err
	}

	return r.setStrings([2]string{keyBlindLevels, string(b)})
}

// Template returns the saved template defaults. Unset values are empty.
func (r *Repository) Template() (models.TemplateDefaults, error) {
	var (
		t   models.TemplateDefaults
		err error
	)

	fields := []struct {
		dst *string
		key string
	}{
		{&t.BreakTime, keyDefaultBreakTime},
		{&t.BlindLevel, keyDefaultBlindLevel},
		{&t.Location, keyDefaultLocation},
		{&t.PlayerCount, keyDefaultPlayerCount},
		{&t.BuyInAmount, keyDefaultBuyIn},
	}

	for _, f := range fields {
		*f.dst, err = r.getString(f.key)
		if err != nil {
			return models.TemplateDefaults{}, err
		}
	}

	return t, nil
}

// SaveTemplate stores each template value under its own key.
func (r *Repository) SaveTemplate(t models.TemplateDefaults) error {
	return r.setStrings(
		[2]string{keyDefaultBreakTime, t.BreakTime},
		[2]string{keyDefaultBlindLevel, t.BlindLevel},
		[2]string{keyDefaultLocation, t.Location},
		[2]string{keyDefaultPlayerCount, t.PlayerCount},
		[2]string{keyDefaultBuyIn, t.BuyInAmount},
	)
}

func (r *Repository) ClearTemplate() error {
	return r.SaveTemplate(record.ClearTemplate())
}

func (r *Repository) Preferences() (models.Preferences, error) {
	var (
		p   models.Preferences
		err error
	)

	if p.Language, err = r.getString(keyLanguage); err != nil {
		return p, err
	}

	if p.Currency, err = r.getString(keyCurrency); err != nil {
		return p, err
	}

	if p.StyleCode, err = r.getString(keyStyleCode); err != nil {
		return p, err
	}

	return p, nil
}

func (r *Repository) SavePreferences(p models.Preferences) error {
	return r.setStrings(
		[2]string{keyLanguage, p.Language},
		[2]string{keyCurrency, p.Currency},
		[2]string{keyStyleCode, p.StyleCode},
	)
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	return r.kv.Close()
}
