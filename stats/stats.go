// Package stats computes profit and time statistics over poker session
// records. Every function is pure and never fails: division guards fall back
// to fixed values instead of producing NaN or Inf.
package stats

import (
	"encoding/json"
	"slices"

	"github.com/maruel/natural"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/orderedmap"
	"github.com/PolarBear-H/pokerpal/internal/timeutil"
)

const (
	startLabel   = "Start"
	unknownLabel = "Unknown"
)

// Summary holds the totals for a whole collection.
type Summary struct {
	TotalProfit   float64 `json:"total_profit"`
	TotalDuration float64 `json:"total_duration"`
	HourlyProfit  float64 `json:"hourly_profit"`
	PerHandProfit float64 `json:"per_hand_profit"`
	WinRate       float64 `json:"win_rate"`
	TotalHands    int     `json:"total_hands"`
	TotalWins     int     `json:"total_wins"`
}

// Period holds the totals for one group of records, such as a month or a
// weekday.
type Period struct {
	Label         string  `json:"label"`
	TotalProfit   float64 `json:"total_profit"`
	HourlyProfit  float64 `json:"hourly_profit"`
	PerGameProfit float64 `json:"per_game_profit"`
	TotalDuration float64 `json:"total_duration"`
	TotalGames    int     `json:"total_games"`
}

// Point is one value in a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// hourly divides profit by duration, treating a zero duration as one unit so
// that the profit itself is reported.
func hourly(profit, duration float64) float64 {
	if duration == 0 {
		return profit
	}

	return profit / duration
}

// perGame divides profit by games, or returns 0 when there are none.
func perGame(profit float64, games int) float64 {
	if games == 0 {
		return 0
	}

	return profit / float64(games)
}

// Total computes the summary statistics for records.
func Total(records []models.Record) Summary {
	var s Summary

	for i := range records {
		r := &records[i]

		s.TotalProfit += r.ChipsWon
		s.TotalDuration += r.Duration
		s.TotalHands++

		if r.Won() {
			s.TotalWins++
		}
	}

	s.HourlyProfit = hourly(s.TotalProfit, s.TotalDuration)
	s.PerHandProfit = perGame(s.TotalProfit, s.TotalHands)

	if s.TotalHands > 0 {
		s.WinRate = float64(s.TotalWins) / float64(s.TotalHands) * 100
	}

	return s
}

// group accumulates records into periods keyed by key, in order of first
// occurrence.
func group(
	records []models.Record,
	key func(r *models.Record) string,
) []Period {
	groups := orderedmap.New[string, Period]()

	for i := range records {
		r := &records[i]

		k := key(r)

		groups.Update(k, func(p Period) Period {
			p.Label = k
			p.TotalProfit += r.ChipsWon
			p.TotalDuration += r.Duration
			p.TotalGames++

			return p
		})
	}

	periods := groups.Values()

	for i := range periods {
		p := &periods[i]

		p.HourlyProfit = hourly(p.TotalProfit, p.TotalDuration)
		p.PerGameProfit = perGame(p.TotalProfit, p.TotalGames)
	}

	return periods
}

// Monthly groups records by the year and month of their start date
// ("2006-01"). Months appear in order of first occurrence, which is newest
// first for a collection in storage order.
func Monthly(records []models.Record) []Period {
	return group(records, func(r *models.Record) string {
		return r.Start().Format(timeutil.MonthKeyLayout)
	})
}

// Weekly groups records by the weekday of their start date. The result is
// always ordered Sunday to Saturday, whatever the input order.
func Weekly(records []models.Record) []Period {
	periods := group(records, func(r *models.Record) string {
		return timeutil.Weekday(r.Start())
	})

	slices.SortFunc(periods, func(a, b Period) int {
		return timeutil.WeekdayIndex(a.Label) - timeutil.WeekdayIndex(b.Label)
	})

	return periods
}

// ByBlindLevel groups records by their bet unit, sorted naturally by label.
func ByBlindLevel(records []models.Record) []Period {
	return naturalGroup(records, func(r *models.Record) string {
		return r.BetUnit
	})
}

// ByLocation groups records by location, sorted naturally by label.
func ByLocation(records []models.Record) []Period {
	return naturalGroup(records, func(r *models.Record) string {
		return r.Location
	})
}

func naturalGroup(
	records []models.Record,
	key func(r *models.Record) string,
) []Period {
	periods := group(records, func(r *models.Record) string {
		if k := key(r); k != "" {
			return k
		}

		return unknownLabel
	})

	slices.SortStableFunc(periods, func(a, b Period) int {
		switch {
		case natural.Less(a.Label, b.Label):
			return -1
		case natural.Less(b.Label, a.Label):
			return 1
		default:
			return 0
		}
	})

	return periods
}

// chronological returns records oldest first. For a collection in storage
// order this is its exact reverse.
func chronological(records []models.Record) []models.Record {
	ordered := slices.Clone(records)

	slices.Reverse(ordered)

	slices.SortStableFunc(ordered, func(a, b models.Record) int {
		return a.Start().Compare(b.Start())
	})

	return ordered
}

func label(r *models.Record) string {
	return r.Start().Format(timeutil.PointLabelLayout)
}

// Cumulative returns the running total of profit, oldest record first. The
// series starts with a zero point, so it has one more point than records.
func Cumulative(records []models.Record) []Point {
	ordered := chronological(records)

	series := make([]Point, 0, len(ordered)+1)
	series = append(series, Point{Label: startLabel})

	var total float64

	for i := range ordered {
		r := &ordered[i]

		total += r.ChipsWon

		series = append(series, Point{Label: label(r), Value: total})
	}

	return series
}

// PerRecord returns the profit of each record, oldest first. It lines up
// with Cumulative without its leading zero point.
func PerRecord(records []models.Record) []Point {
	ordered := chronological(records)

	series := make([]Point, len(ordered))

	for i := range ordered {
		r := &ordered[i]
		series[i] = Point{Label: label(r), Value: r.ChipsWon}
	}

	return series
}

// WinRateSeries returns the running win rate (percent) after each record,
// oldest first.
func WinRateSeries(records []models.Record) []Point {
	ordered := chronological(records)

	series := make([]Point, len(ordered))

	var wins int

	for i := range ordered {
		r := &ordered[i]

		if r.Won() {
			wins++
		}

		series[i] = Point{
			Label: label(r),
			Value: float64(wins) / float64(i+1) * 100,
		}
	}

	return series
}

// Report bundles every view for a collection.
type Report struct {
	Total      Summary  `json:"total"`
	Monthly    []Period `json:"monthly"`
	Weekly     []Period `json:"weekly"`
	Cumulative []Point  `json:"cumulative"`
	PerRecord  []Point  `json:"per_record"`
	WinRate    []Point  `json:"win_rate"`
}

// Compute builds a Report for records.
func Compute(records []models.Record) *Report {
	return &Report{
		Total:      Total(records),
		Monthly:    Monthly(records),
		Weekly:     Weekly(records),
		Cumulative: Cumulative(records),
		PerRecord:  PerRecord(records),
		WinRate:    WinRateSeries(records),
	}
}

// ToJSON encodes the report as indented JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
