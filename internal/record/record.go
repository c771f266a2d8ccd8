// Package record turns user-entered session fields into normalised records
// and merges them into a record collection
package record

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/timeutil"
)

// MinPlayerCount is the smallest player count a record may hold.
const MinPlayerCount = 2

// Manager creates and updates records. With Strict unset, malformed numbers
// are coerced to zero; with Strict set they are rejected.
type Manager struct {
	Now    func() time.Time
	NewID  func() uuid.UUID
	Strict bool
}

// New returns a Manager using the wall clock and random UUIDs.
func New(strict bool) *Manager {
	return &Manager{
		Now:    time.Now,
		NewID:  uuid.New,
		Strict: strict,
	}
}

// Save normalises raw into a record and merges it into records. If existing
// is non-nil, the record with the same ID is replaced; otherwise the new
// record is appended. The returned collection is sorted by start date,
// newest first. records is not modified.
func (m *Manager) Save(
	records []models.Record,
	existing *models.Record,
	raw models.RawFields,
) ([]models.Record, models.Record, error) {
	rec, err := m.normalise(raw)
	if err != nil {
		return nil, models.Record{}, err
	}

	updated := slices.Clone(records)

	replaced := false

	if existing != nil && existing.ID != uuid.Nil {
		rec.ID = existing.ID

		i := slices.IndexFunc(updated, func(r models.Record) bool {
			return r.ID == existing.ID
		})
		if i >= 0 {
			updated[i] = rec
			replaced = true
		}
	}

	if rec.ID == uuid.Nil {
		rec.ID = m.NewID()
	}

	if !replaced {
		updated = append(updated, rec)
	}

	Sort(updated)

	slog.Debug(
		"record saved",
		slog.String("id", rec.ID.String()),
		slog.Bool("replaced", replaced),
	)

	return updated, rec, nil
}

// normalise coerces the numeric fields of raw and computes the derived
// fields.
func (m *Manager) normalise(raw models.RawFields) (models.Record, error) {
	breakTime, err := m.number("break time", raw.BreakTime)
	if err != nil {
		return models.Record{}, err
	}

	buyIn, err := m.number("buy-in", raw.BuyInAmount)
	if err != nil {
		return models.Record{}, err
	}

	balance, err := m.number("cash-out", raw.RemainingBalance)
	if err != nil {
		return models.Record{}, err
	}

	players, err := m.playerCount(raw.PlayerCount)
	if err != nil {
		return models.Record{}, err
	}

	if raw.StartDate.IsZero() {
		return models.Record{}, errMissingStart
	}

	if m.Strict && raw.EndDate.Before(raw.StartDate) {
		return models.Record{}, errEndBeforeStart.Fmt(
			raw.EndDate.Format(timeutil.RowLayout),
			raw.StartDate.Format(timeutil.RowLayout),
		)
	}

	rec := models.Record{
		StartDate:        raw.StartDate,
		EndDate:          raw.EndDate,
		BreakTime:        breakTime,
		Location:         strings.TrimSpace(raw.Location),
		PlayerCount:      players,
		BetUnit:          strings.TrimSpace(raw.BetUnit),
		BuyInAmount:      buyIn,
		RemainingBalance: balance,
	}

	Derive(&rec)

	return rec, nil
}

// Derive recomputes the duration and profit of rec from its other fields.
func Derive(rec *models.Record) {
	rec.Duration = timeutil.Round2(
		timeutil.HoursBetween(rec.EndDate, rec.StartDate) - rec.BreakTime,
	)
	rec.ChipsWon = rec.RemainingBalance - rec.BuyInAmount
}

// number parses a numeric field. Blank input is zero in both modes.
func (m *Manager) number(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	f, err := cast.ToFloat64E(s)
	if err != nil {
		if m.Strict {
			return 0, errInvalidNumber.Fmt(field, s)
		}

		slog.Warn(
			"coercing malformed number to zero",
			slog.String("field", field),
			slog.String("value", s),
		)

		return 0, nil
	}

	return f, nil
}

func (m *Manager) playerCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := cast.ToIntE(s)
	if err != nil || n < MinPlayerCount {
		if m.Strict {
			return 0, errInvalidPlayerCount.Fmt(s, MinPlayerCount)
		}

		slog.Warn(
			"ignoring invalid player count",
			slog.String("value", s),
		)

		return 0, nil
	}

	return n, nil
}

// Delete removes the records whose IDs are listed. IDs that match nothing
// are ignored. When nothing is removed, records is returned as is.
func Delete(records []models.Record, ids ...uuid.UUID) []models.Record {
	if !slices.ContainsFunc(records, func(r models.Record) bool {
		return slices.Contains(ids, r.ID)
	}) {
		return records
	}

	return slices.DeleteFunc(slices.Clone(records), func(r models.Record) bool {
		return slices.Contains(ids, r.ID)
	})
}

// Sort orders records by start date, newest first. Records with equal start
// dates keep their relative order.
func Sort(records []models.Record) {
	slices.SortStableFunc(records, func(a, b models.Record) int {
		return b.StartDate.Compare(a.StartDate)
	})
}

// Find returns the record whose ID starts with prefix. The prefix must
// match exactly one record.
func Find(records []models.Record, prefix string) (*models.Record, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, errRecordNotFound.Fmt(prefix)
	}

	var found *models.Record

	for i := range records {
		if !strings.HasPrefix(records[i].ID.String(), prefix) {
			continue
		}

		if found != nil {
			return nil, errAmbiguousID.Fmt(prefix)
		}

		found = &records[i]
	}

	if found == nil {
		return nil, errRecordNotFound.Fmt(prefix)
	}

	return found, nil
}
