package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarBear-H/pokerpal/internal/apperr"
	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/record"
	"github.com/PolarBear-H/pokerpal/internal/testutil"
)

var (
	id1 = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

type flakyKV struct {
	*MemKV
	fail bool
}

func (f *flakyKV) Set(key, value string) error {
	if f.fail {
		return errors.New("disk full")
	}

	return f.MemKV.Set(key, value)
}

func sequentialIDs(ids ...uuid.UUID) func() uuid.UUID {
	return func() uuid.UUID {
		id := ids[0]
		ids = ids[1:]

		return id
	}
}

func sampleRecords() []models.Record {
	return []models.Record{
		{
			ID:               id1,
			StartDate:        testutil.Date(2024, time.January, 1, 10, 0),
			EndDate:          testutil.Date(2024, time.January, 1, 13, 30),
			Location:         "Aria",
			BetUnit:          "1/2",
			BreakTime:        0.5,
			Duration:         3,
			BuyInAmount:      100,
			RemainingBalance: 180,
			ChipsWon:         80,
			PlayerCount:      9,
		},
		{
			ID:               id2,
			StartDate:        testutil.Date(2024, time.February, 1, 18, 0),
			EndDate:          testutil.Date(2024, time.February, 1, 20, 0),
			Location:         "Home game",
			BetUnit:          "2/5",
			Duration:         2,
			BuyInAmount:      200,
			RemainingBalance: 150,
			ChipsWon:         -50,
		},
	}
}

func TestKVBackends(t *testing.T) {
	for _, driver := range []string{DriverBolt, DriverSQLite, DriverMemory} {
		t.Run(driver, func(t *testing.T) {
			kv, err := Open(driver, filepath.Join(t.TempDir(), "data", "pokerpal.db"))
			require.NoError(t, err)

			t.Cleanup(func() {
				_ = kv.Close()
			})

			_, ok, err := kv.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set("currency", "USD"))
			require.NoError(t, kv.Set("currency", "EUR"))

			v, ok, err := kv.Get("currency")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "EUR", v)

			require.NoError(t, kv.Set("defaultLocation", ""))

			v, ok, err = kv.Get("defaultLocation")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("postgres", filepath.Join(t.TempDir(), "x.db"))
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestBoltSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerpal.db")

	kv, err := OpenBolt(path)
	require.NoError(t, err)

	defer kv.Close()

	_, err = OpenBolt(path)
	assert.ErrorIs(t, err, errAlreadyRunning)
}

func TestOpenSQLiteForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a database "), 64), 0o600))

	_, err := OpenSQLite(path)
	require.Error(t, err)
}

func TestCommitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerpal.db")

	kv, err := OpenBolt(path)
	require.NoError(t, err)

	repo := NewRepository(kv)
	require.NoError(t, repo.Load())
	assert.Empty(t, repo.Records())

	require.NoError(t, repo.Commit(sampleRecords()))

	got := repo.Records()
	require.Len(t, got, 2)
	assert.Equal(t, id2, got[0].ID, "newest record first")

	require.NoError(t, kv.Close())

	kv, err = OpenBolt(path)
	require.NoError(t, err)

	defer kv.Close()

	reloaded := NewRepository(kv)
	require.NoError(t, reloaded.Load())

	if diff := cmp.Diff(got, reloaded.Records()); diff != "" {
		t.Fatalf("reloaded records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	repo := NewRepository(NewMemKV())
	require.NoError(t, repo.Commit(sampleRecords()))

	got := repo.Records()
	got[0].Location = "changed"

	assert.NotEqual(t, "changed", repo.Records()[0].Location)
}

func TestCommitFailureLeavesStateUntouched(t *testing.T) {
	kv := &flakyKV{MemKV: NewMemKV()}
	repo := NewRepository(kv)

	require.NoError(t, repo.Commit(sampleRecords()[:1]))

	stored, _, _ := kv.Get(keyScoreHistory)

	kv.fail = true

	err := repo.Commit(sampleRecords())
	require.ErrorIs(t, err, errPersist)
	assert.True(t, apperr.IsRetryable(err))

	assert.Len(t, repo.Records(), 1)

	after, _, _ := kv.Get(keyScoreHistory)
	assert.Equal(t, stored, after)
}

func TestLoadAssignsAndPersistsIDs(t *testing.T) {
	kv := NewMemKV()

	legacy := `[
		{"startDate":"2024-01-01T10:00:00.000Z","endDate":"2024-01-01T13:30:00.000Z","breakTime":"0.5","buyInAmount":"100","remainingBalance":"180","chipsWon":"80","duration":"3"}
	]`

	require.NoError(t, kv.Set(keyScoreHistory, legacy))

	repo := NewRepository(kv)
	repo.NewID = sequentialIDs(id1)

	require.NoError(t, repo.Load())

	got := repo.Records()
	require.Len(t, got, 1)
	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, 3.0, got[0].Duration)
	assert.Equal(t, 80.0, got[0].ChipsWon)

	again := NewRepository(kv)
	again.NewID = func() uuid.UUID {
		t.Fatal("ids must be persisted after the first load")
		return uuid.Nil
	}

	require.NoError(t, again.Load())
	assert.Equal(t, id1, again.Records()[0].ID)
}

func TestDuplicateIDsGetNewIDs(t *testing.T) {
	dup := `[
		{"id":"11111111-1111-1111-1111-111111111111","startDate":"2024-02-01T18:00:00Z","buyInAmount":100,"remainingBalance":150},
		{"id":"11111111-1111-1111-1111-111111111111","startDate":"2024-01-01T18:00:00Z","buyInAmount":100,"remainingBalance":50}
	]`

	t.Run("import", func(t *testing.T) {
		repo := NewRepository(NewMemKV())
		repo.NewID = sequentialIDs(id2)

		n, err := repo.Import([]byte(dup))
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		got := repo.Records()
		require.Len(t, got, 2)

		assert.Equal(t, id1, got[0].ID, "first occurrence keeps its id")
		assert.Equal(t, 50.0, got[0].ChipsWon)
		assert.Equal(t, id2, got[1].ID)
		assert.Equal(t, -50.0, got[1].ChipsWon)

		assert.Len(t, record.Delete(got, id1), 1)

		rec, err := record.Find(got, id2.String())
		require.NoError(t, err)
		assert.Equal(t, id2, rec.ID)
	})

	t.Run("load persists the new id", func(t *testing.T) {
		kv := NewMemKV()
		require.NoError(t, kv.Set(keyScoreHistory, dup))

		repo := NewRepository(kv)
		repo.NewID = sequentialIDs(id2)

		require.NoError(t, repo.Load())

		again := NewRepository(kv)
		again.NewID = func() uuid.UUID {
			t.Fatal("duplicate must be resolved on the first load")
			return uuid.Nil
		}

		require.NoError(t, again.Load())

		ids := []uuid.UUID{again.Records()[0].ID, again.Records()[1].ID}
		assert.ElementsMatch(t, []uuid.UUID{id1, id2}, ids)
	})
}

func TestImportPlayerCount(t *testing.T) {
	cases := []struct {
		Name  string
		Value string
		Want  int
	}{
		{"whole number", `6`, 6},
		{"numeric string", `"9"`, 9},
		{"unset", `""`, 0},
		{"fraction", `"2.7"`, 0},
		{"negative", `-3`, 0},
		{"single player", `1`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			repo := NewRepository(NewMemKV())

			_, err := repo.Import([]byte(
				`[{"startDate":"2024-01-01T18:00:00Z","playerCount":` + tc.Value + `}]`,
			))
			require.NoError(t, err)

			assert.Equal(t, tc.Want, repo.Records()[0].PlayerCount)
		})
	}
}

func TestLoadCorruptHistory(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Set(keyScoreHistory, "{not json"))

	err := NewRepository(kv).Load()
	assert.ErrorIs(t, err, errCorrupt)
}

func TestImport(t *testing.T) {
	data := []byte(`[
		{"startDate":"2024-01-01T10:00:00.000Z","endDate":"2024-01-01T13:30:00.000Z","breakTime":"0.5","location":" Aria ","betUnit":"1/2","buyInAmount":"100","remainingBalance":"180","playerCount":"9"},
		{"id":"22222222-2222-2222-2222-222222222222","startDate":1706810400000,"endDate":1706817600000,"buyInAmount":200,"remainingBalance":150}
	]`)

	repo := NewRepository(NewMemKV())
	repo.NewID = sequentialIDs(id1)

	n, err := repo.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got := repo.Records()
	require.Len(t, got, 2)

	assert.Equal(t, id2, got[0].ID)
	assert.Equal(t, 2.0, got[0].Duration)
	assert.Equal(t, -50.0, got[0].ChipsWon)

	assert.Equal(t, id1, got[1].ID)
	assert.Equal(t, "Aria", got[1].Location)
	assert.Equal(t, 9, got[1].PlayerCount)
	assert.Equal(t, 80.0, got[1].ChipsWon)
}

func TestImportIsAllOrNothing(t *testing.T) {
	cases := []struct {
		Name string
		Data string
	}{
		{"malformed json", `[{"startDate":`},
		{"null", `null`},
		{"not an array", `{"startDate":"2024-01-01T10:00:00Z"}`},
		{"bad number", `[{"startDate":"2024-01-01T10:00:00Z","buyInAmount":"lots"}]`},
		{"bad date", `[{"startDate":"yesterday-ish"}]`},
		{"missing start", `[{"buyInAmount":100}]`},
		{"bad id", `[{"id":"nope","startDate":"2024-01-01T10:00:00Z"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			kv := NewMemKV()
			repo := NewRepository(kv)

			require.NoError(t, repo.Commit(sampleRecords()))

			stored, _, _ := kv.Get(keyScoreHistory)

			_, err := repo.Import([]byte(tc.Data))
			require.ErrorIs(t, err, errImport)

			assert.Len(t, repo.Records(), 2)

			after, _, _ := kv.Get(keyScoreHistory)
			assert.Equal(t, stored, after)
		})
	}
}

type exportGolden struct {
	t    *testing.T
	repo *Repository
	name string
}

func (g *exportGolden) Output() ([]byte, string) {
	b, err := g.repo.Export()
	require.NoError(g.t, err)

	return append(b, '\n'), g.name
}

func TestExport(t *testing.T) {
	repo := NewRepository(NewMemKV())

	b, err := repo.Export()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	require.NoError(t, repo.Commit(sampleRecords()))

	testutil.CompareGoldenFile(t, &exportGolden{t: t, repo: repo, name: "export"})

	b, err = repo.Export()
	require.NoError(t, err)

	roundTrip := NewRepository(NewMemKV())

	_, err = roundTrip.Import(b)
	require.NoError(t, err)
	assert.Equal(t, repo.Records(), roundTrip.Records())
}

func TestBlindLevels(t *testing.T) {
	repo := NewRepository(NewMemKV())

	levels, err := repo.BlindLevels()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBlindLevels, levels)

	levels[0].SmallBlind = 99
	assert.Equal(t, 1.0, models.DefaultBlindLevels[0].SmallBlind)

	saved := []models.BlindLevel{
		{SmallBlind: 5, BigBlind: 10},
		{SmallBlind: 0.5, BigBlind: 1},
	}

	require.NoError(t, repo.SaveBlindLevels(saved))

	levels, err = repo.BlindLevels()
	require.NoError(t, err)
	assert.Equal(t, []models.BlindLevel{
		{SmallBlind: 0.5, BigBlind: 1},
		{SmallBlind: 5, BigBlind: 10},
	}, levels)
}

func TestTemplate(t *testing.T) {
	kv := NewMemKV()
	repo := NewRepository(kv)

	tmpl, err := repo.Template()
	require.NoError(t, err)
	assert.True(t, tmpl.IsZero())

	want := models.TemplateDefaults{
		BreakTime:   "0.5",
		BlindLevel:  "1/2",
		Location:    "Aria",
		PlayerCount: "9",
		BuyInAmount: "200",
	}

	require.NoError(t, repo.SaveTemplate(want))

	v, _, _ := kv.Get(keyDefaultBuyIn)
	assert.Equal(t, "200", v)

	tmpl, err = repo.Template()
	require.NoError(t, err)
	assert.Equal(t, want, tmpl)

	require.NoError(t, repo.ClearTemplate())

	tmpl, err = repo.Template()
	require.NoError(t, err)
	assert.True(t, tmpl.IsZero())
}

func TestPreferences(t *testing.T) {
	repo := NewRepository(NewMemKV())

	want := models.Preferences{Language: "en", Currency: "EUR", StyleCode: "dark"}

	require.NoError(t, repo.SavePreferences(want))

	got, err := repo.Preferences()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
