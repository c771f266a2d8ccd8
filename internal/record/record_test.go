package record

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarBear-H/pokerpal/internal/models"
)

var (
	id1 = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	id3 = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func testManager(strict bool) *Manager {
	ids := []uuid.UUID{id1, id2, id3}

	return &Manager{
		Now: func() time.Time {
			return date(2024, time.May, 1, 20, 0)
		},
		NewID: func() uuid.UUID {
			id := ids[0]
			ids = ids[1:]

			return id
		},
		Strict: strict,
	}
}

func TestSaveNewRecord(t *testing.T) {
	m := testManager(false)

	raw := models.RawFields{
		StartDate:        date(2024, time.January, 1, 10, 0),
		EndDate:          date(2024, time.January, 1, 13, 30),
		BreakTime:        "0.5",
		Location:         "  Aria ",
		PlayerCount:      "9",
		BetUnit:          "1/2",
		BuyInAmount:      "100",
		RemainingBalance: "180",
	}

	records, rec, err := m.Save(nil, nil, raw)
	require.NoError(t, err)

	want := models.Record{
		ID:               id1,
		StartDate:        raw.StartDate,
		EndDate:          raw.EndDate,
		BreakTime:        0.5,
		Duration:         3,
		Location:         "Aria",
		PlayerCount:      9,
		BetUnit:          "1/2",
		BuyInAmount:      100,
		RemainingBalance: 180,
		ChipsWon:         80,
	}

	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("Save() record mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []models.Record{want}, records)
}

func TestSaveKeepsCollectionSorted(t *testing.T) {
	m := testManager(false)

	var records []models.Record

	for _, day := range []int{5, 20, 1} {
		var err error

		records, _, err = m.Save(records, nil, models.RawFields{
			StartDate: date(2024, time.March, day, 18, 0),
			EndDate:   date(2024, time.March, day, 22, 0),
		})
		require.NoError(t, err)
	}

	got := make([]int, len(records))
	for i := range records {
		got[i] = records[i].StartDate.Day()
	}

	assert.Equal(t, []int{20, 5, 1}, got)
}

func TestSaveUpdatesExisting(t *testing.T) {
	m := testManager(false)

	records, first, err := m.Save(nil, nil, models.RawFields{
		StartDate:        date(2024, time.March, 1, 18, 0),
		EndDate:          date(2024, time.March, 1, 20, 0),
		BuyInAmount:      "200",
		RemainingBalance: "150",
	})
	require.NoError(t, err)

	records, _, err = m.Save(records, nil, models.RawFields{
		StartDate: date(2024, time.March, 2, 18, 0),
		EndDate:   date(2024, time.March, 2, 19, 0),
	})
	require.NoError(t, err)

	before := append([]models.Record(nil), records...)

	raw := models.RawFromRecord(&first)
	raw.RemainingBalance = "450"
	raw.StartDate = date(2024, time.March, 3, 18, 0)
	raw.EndDate = date(2024, time.March, 3, 21, 0)

	updated, rec, err := m.Save(records, &first, raw)
	require.NoError(t, err)

	assert.Equal(t, first.ID, rec.ID)
	assert.Equal(t, 250.0, rec.ChipsWon)
	assert.Equal(t, 3.0, rec.Duration)
	assert.Len(t, updated, 2)
	assert.Equal(t, first.ID, updated[0].ID, "edited record moves to the front")
	assert.Equal(t, before, records, "input collection must not change")
}

func TestSaveUnknownExistingAppends(t *testing.T) {
	m := testManager(false)

	ghost := models.Record{ID: uuid.MustParse("99999999-9999-9999-9999-999999999999")}

	records, rec, err := m.Save(nil, &ghost, models.RawFields{
		StartDate: date(2024, time.March, 1, 18, 0),
		EndDate:   date(2024, time.March, 1, 20, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, ghost.ID, rec.ID)
	assert.Len(t, records, 1)
}

func TestSaveNumericCoercion(t *testing.T) {
	raw := models.RawFields{
		StartDate:        date(2024, time.March, 1, 18, 0),
		EndDate:          date(2024, time.March, 1, 20, 0),
		BuyInAmount:      "abc",
		RemainingBalance: "50",
		PlayerCount:      "1",
	}

	t.Run("lenient mode coerces to zero", func(t *testing.T) {
		_, rec, err := testManager(false).Save(nil, nil, raw)
		require.NoError(t, err)

		assert.Equal(t, 0.0, rec.BuyInAmount)
		assert.Equal(t, 50.0, rec.ChipsWon)
		assert.Equal(t, 0, rec.PlayerCount)
	})

	t.Run("strict mode rejects malformed numbers", func(t *testing.T) {
		_, _, err := testManager(true).Save(nil, nil, raw)
		assert.ErrorIs(t, err, errInvalidNumber)
	})

	t.Run("strict mode rejects small player counts", func(t *testing.T) {
		r := raw
		r.BuyInAmount = "10"

		_, _, err := testManager(true).Save(nil, nil, r)
		assert.ErrorIs(t, err, errInvalidPlayerCount)
	})

	t.Run("blank values are zero in strict mode", func(t *testing.T) {
		r := raw
		r.BuyInAmount = "  "
		r.PlayerCount = ""

		_, rec, err := testManager(true).Save(nil, nil, r)
		require.NoError(t, err)
		assert.Equal(t, 50.0, rec.ChipsWon)
	})
}

func TestSaveDateValidation(t *testing.T) {
	raw := models.RawFields{
		StartDate: date(2024, time.March, 1, 20, 0),
		EndDate:   date(2024, time.March, 1, 18, 0),
	}

	_, rec, err := testManager(false).Save(nil, nil, raw)
	require.NoError(t, err)
	assert.Equal(t, -2.0, rec.Duration)

	_, _, err = testManager(true).Save(nil, nil, raw)
	assert.ErrorIs(t, err, errEndBeforeStart)

	_, _, err = testManager(false).Save(nil, nil, models.RawFields{})
	assert.ErrorIs(t, err, errMissingStart)
}

func TestDelete(t *testing.T) {
	records := []models.Record{
		{ID: id3, StartDate: date(2024, time.March, 3, 0, 0)},
		{ID: id2, StartDate: date(2024, time.March, 2, 0, 0)},
		{ID: id1, StartDate: date(2024, time.March, 1, 0, 0)},
	}

	t.Run("single", func(t *testing.T) {
		got := Delete(records, id2)
		assert.Equal(t, []models.Record{records[0], records[2]}, got)
		assert.Len(t, records, 3)
	})

	t.Run("bulk", func(t *testing.T) {
		got := Delete(records, id1, id3)
		assert.Equal(t, []models.Record{records[1]}, got)
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		unknown := uuid.MustParse("44444444-4444-4444-4444-444444444444")

		got := Delete(records, unknown)
		assert.Equal(t, records, got)
		assert.Same(t, &records[0], &got[0])
	})
}

func TestFind(t *testing.T) {
	records := []models.Record{
		{ID: uuid.MustParse("abcd1111-0000-0000-0000-000000000000")},
		{ID: uuid.MustParse("abcd2222-0000-0000-0000-000000000000")},
	}

	rec, err := Find(records, "ABCD2")
	require.NoError(t, err)
	assert.Equal(t, records[1].ID, rec.ID)

	_, err = Find(records, "abcd")
	assert.ErrorIs(t, err, errAmbiguousID)

	_, err = Find(records, "ffff")
	assert.ErrorIs(t, err, errRecordNotFound)
}

func TestTemplate(t *testing.T) {
	m := testManager(false)

	tmpl := CreateTemplate(models.RawFields{
		BreakTime:        "0.5",
		Location:         "Home game",
		PlayerCount:      "6",
		BetUnit:          "1/2",
		BuyInAmount:      "200",
		RemainingBalance: "999",
	})

	assert.Equal(t, models.TemplateDefaults{
		BreakTime:   "0.5",
		BlindLevel:  "1/2",
		Location:    "Home game",
		PlayerCount: "6",
		BuyInAmount: "200",
	}, tmpl)

	blank := m.Blank(tmpl)
	assert.Equal(t, "200", blank.BuyInAmount)
	assert.Equal(t, "1/2", blank.BetUnit)
	assert.Empty(t, blank.RemainingBalance)
	assert.Equal(t, m.Now(), blank.StartDate)

	assert.True(t, ClearTemplate().IsZero())
	assert.Equal(t, models.RawFields{
		StartDate: m.Now(),
		EndDate:   m.Now(),
	}, m.Blank(ClearTemplate()))
}

func TestMerge(t *testing.T) {
	base := models.RawFields{
		Location:         "Aria",
		BuyInAmount:      "100",
		RemainingBalance: "0",
	}

	update := models.RawFields{
		Location:         "Bellagio",
		RemainingBalance: "300",
	}

	got := Merge(base, update, map[string]bool{FieldCashOut: true})

	assert.Equal(t, "Aria", got.Location)
	assert.Equal(t, "100", got.BuyInAmount)
	assert.Equal(t, "300", got.RemainingBalance)
}

func bl(sb, bb float64) models.BlindLevel {
	return models.BlindLevel{SmallBlind: sb, BigBlind: bb}
}

func TestBlindLevels(t *testing.T) {
	levels := []models.BlindLevel{bl(1, 2), bl(5, 10)}

	got, err := AddBlindLevel(levels, models.BlindLevel{SmallBlind: 2, BigBlind: 5})
	require.NoError(t, err)
	assert.Equal(t, []models.BlindLevel{bl(1, 2), bl(2, 5), bl(5, 10)}, got)

	got, err = AddBlindLevel(got, models.BlindLevel{SmallBlind: 1, BigBlind: 3})
	require.NoError(t, err)
	assert.Equal(t, []models.BlindLevel{bl(1, 2), bl(1, 3), bl(2, 5), bl(5, 10)}, got)

	_, err = AddBlindLevel(got, models.BlindLevel{SmallBlind: 1, BigBlind: 2})
	assert.ErrorIs(t, err, errDuplicateBlindLevel)

	_, err = AddBlindLevel(got, models.BlindLevel{SmallBlind: 5, BigBlind: 2})
	assert.ErrorIs(t, err, errInvalidBlindLevel)

	got = RemoveBlindLevel(got, models.BlindLevel{SmallBlind: 1, BigBlind: 3})
	assert.Equal(t, []models.BlindLevel{bl(1, 2), bl(2, 5), bl(5, 10)}, got)
	assert.Equal(t, []models.BlindLevel{bl(1, 2), bl(5, 10)}, levels)
}
