// Package models defines the records and settings persisted by pokerpal
package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Record is one logged poker session. Duration and ChipsWon are derived from
// the other fields whenever the record is saved.
type Record struct {
	ID               uuid.UUID `json:"id"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Location         string    `json:"location"`
	BetUnit          string    `json:"betUnit"`
	BreakTime        float64   `json:"breakTime"`
	Duration         float64   `json:"duration"` // hours
	BuyInAmount      float64   `json:"buyInAmount"`
	RemainingBalance float64   `json:"remainingBalance"`
	ChipsWon         float64   `json:"chipsWon"`
	PlayerCount      int       `json:"playerCount,omitempty"`
}

// Start returns the start date of the record. A record without a start date
// is corrupt, so Start panics instead of returning a zero time.
func (r *Record) Start() time.Time {
	if r.StartDate.IsZero() {
		panic(fmt.Sprintf("record %s has no start date", r.ID))
	}

	return r.StartDate
}

// Won reports whether the session broke even or made a profit.
func (r *Record) Won() bool {
	return r.ChipsWon >= 0
}

// ShortID returns the abbreviated form of the record ID shown in tables.
func (r *Record) ShortID() string {
	return r.ID.String()[:8]
}

// RawFields holds record values as entered by the user, before numeric
// coercion and derived-field computation.
type RawFields struct {
	StartDate        time.Time
	EndDate          time.Time
	BreakTime        string
	Location         string
	PlayerCount      string
	BetUnit          string
	BuyInAmount      string
	RemainingBalance string
}

// RawFromRecord converts a saved record back into editable fields.
func RawFromRecord(r *Record) RawFields {
	raw := RawFields{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		BreakTime:        FormatFloat(r.BreakTime),
		Location:         r.Location,
		BetUnit:          r.BetUnit,
		BuyInAmount:      FormatFloat(r.BuyInAmount),
		RemainingBalance: FormatFloat(r.RemainingBalance),
	}

	if r.PlayerCount != 0 {
		raw.PlayerCount = strconv.Itoa(r.PlayerCount)
	}

	return raw
}

// FormatFloat formats f with the fewest digits that represent it exactly.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BlindLevel is a small/big blind pair describing a stake.
type BlindLevel struct {
	SmallBlind float64 `json:"smallBlind"`
	BigBlind   float64 `json:"bigBlind"`
}

// Label returns the blind level in the "sb/bb" form used as a record's
// BetUnit.
func (b BlindLevel) Label() string {
	return FormatFloat(b.SmallBlind) + "/" + FormatFloat(b.BigBlind)
}

// Less orders blind levels by small blind, then big blind.
func (b BlindLevel) Less(o BlindLevel) bool {
	if b.SmallBlind != o.SmallBlind {
		return b.SmallBlind < o.SmallBlind
	}

	return b.BigBlind < o.BigBlind
}

// DefaultBlindLevels is used when no blind level list has been saved.
var DefaultBlindLevels = []BlindLevel{
	{SmallBlind: 1, BigBlind: 2},
	{SmallBlind: 2, BigBlind: 5},
	{SmallBlind: 5, BigBlind: 10},
}

// TemplateDefaults are the values pre-filled when starting a new record.
type TemplateDefaults struct {
	BreakTime   string `json:"breakTime"`
	BlindLevel  string `json:"blindLevel"`
	Location    string `json:"location"`
	PlayerCount string `json:"playerCount"`
	BuyInAmount string `json:"buyInAmount"`
}

// IsZero reports whether no template value is set.
func (t TemplateDefaults) IsZero() bool {
	return t == TemplateDefaults{}
}

// Preferences are presentation settings. They never affect statistics.
type Preferences struct {
	Language  string `json:"language"`
	Currency  string `json:"currency"`
	StyleCode string `json:"styleCode"`
}
