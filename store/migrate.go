package store

import (
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/record"
)

// decodeRecords parses a JSON array of session records. Besides the current
// format it accepts data written by older versions of the app: numbers
// stored as strings, dates in any common layout or as epoch milliseconds,
// and records without an id. Records missing an id, or repeating the id of
// an earlier record, are given a new one, and migrated reports whether that
// happened. Derived fields are recomputed so
// that stale or stringly-typed values cannot leak into statistics.
func decodeRecords(
	data []byte,
	newID func() uuid.UUID,
) (records []models.Record, migrated bool, err error) {
	var raw []map[string]any

	err = json.Unmarshal(data, &raw)
	if err != nil {
		return nil, false, errNotRecordArray.Wrap(err)
	}

	// null decodes without error
	if raw == nil {
		return nil, false, errNotRecordArray
	}

	records = make([]models.Record, 0, len(raw))
	seen := make(map[uuid.UUID]bool, len(raw))

	for i, fields := range raw {
		rec, assigned, err := migrateRecord(fields, newID)
		if err != nil {
			return nil, false, errInvalidRecord.Fmt(i + 1).Wrap(err)
		}

		if seen[rec.ID] {
			slog.Warn(
				"duplicate record id replaced",
				slog.String("id", rec.ID.String()),
				slog.Int("record", i+1),
			)

			rec.ID = newID()
			assigned = true
		}

		seen[rec.ID] = true
		migrated = migrated || assigned

		records = append(records, rec)
	}

	record.Sort(records)

	return records, migrated, nil
}

func migrateRecord(
	fields map[string]any,
	newID func() uuid.UUID,
) (rec models.Record, assigned bool, err error) {
	rec.ID, assigned, err = parseID(fields["id"], newID)
	if err != nil {
		return rec, false, err
	}

	rec.StartDate, err = parseDate("startDate", fields["startDate"])
	if err != nil {
		return rec, false, err
	}

	if rec.StartDate.IsZero() {
		return rec, false, errMissingField.Fmt("startDate")
	}

	rec.EndDate, err = parseDate("endDate", fields["endDate"])
	if err != nil {
		return rec, false, err
	}

	if rec.EndDate.IsZero() {
		rec.EndDate = rec.StartDate
	}

	rec.Location = strings.TrimSpace(cast.ToString(fields["location"]))
	rec.BetUnit = strings.TrimSpace(cast.ToString(fields["betUnit"]))

	numbers := []struct {
		dst  *float64
		name string
	}{
		{&rec.BreakTime, "breakTime"},
		{&rec.BuyInAmount, "buyInAmount"},
		{&rec.RemainingBalance, "remainingBalance"},
	}

	for _, n := range numbers {
		*n.dst, err = parseNumber(n.name, fields[n.name])
		if err != nil {
			return rec, false, err
		}
	}

	players, err := parseNumber("playerCount", fields["playerCount"])
	if err != nil {
		return rec, false, err
	}

	rec.PlayerCount = playerCount(players)

	record.Derive(&rec)

	return rec, assigned, nil
}

// playerCount keeps whole counts of at least record.MinPlayerCount and
// treats anything else as unset.
func playerCount(f float64) int {
	if f == 0 {
		return 0
	}

	if f != math.Trunc(f) || f < record.MinPlayerCount {
		slog.Warn("ignoring invalid player count", slog.Float64("value", f))
		return 0
	}

	return int(f)
}

func parseID(
	v any,
	newID func() uuid.UUID,
) (uuid.UUID, bool, error) {
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return newID(), true, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false, errInvalidField.Fmt("id", v).Wrap(err)
	}

	return id, false, nil
}

func parseNumber(name string, v any) (float64, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return 0, nil
		}
	}

	if v == nil {
		return 0, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errInvalidField.Fmt(name, v)
	}

	return f, nil
}

func parseDate(name string, v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case float64:
		return time.UnixMilli(int64(d)), nil
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, nil
		}

		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}

		t, err := dateparse.ParseAny(s)
		if err != nil {
			return time.Time{}, errInvalidField.Fmt(name, d).Wrap(err)
		}

		return t, nil
	default:
		return time.Time{}, errInvalidField.Fmt(name, v)
	}
}
