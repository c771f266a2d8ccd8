package record

import (
	"github.com/PolarBear-H/pokerpal/internal/models"
)

// Blank returns the fields of a new record, pre-filled from defaults and
// starting and ending now.
func (m *Manager) Blank(defaults models.TemplateDefaults) models.RawFields {
	now := m.Now()

	return models.RawFields{
		StartDate:   now,
		EndDate:     now,
		BreakTime:   defaults.BreakTime,
		Location:    defaults.Location,
		PlayerCount: defaults.PlayerCount,
		BetUnit:     defaults.BlindLevel,
		BuyInAmount: defaults.BuyInAmount,
	}
}

// CreateTemplate captures the reusable subset of raw as template defaults.
// Any previous template is replaced entirely.
func CreateTemplate(raw models.RawFields) models.TemplateDefaults {
	return models.TemplateDefaults{
		BreakTime:   raw.BreakTime,
		BlindLevel:  raw.BetUnit,
		Location:    raw.Location,
		PlayerCount: raw.PlayerCount,
		BuyInAmount: raw.BuyInAmount,
	}
}

// ClearTemplate returns empty template defaults.
func ClearTemplate() models.TemplateDefaults {
	return models.TemplateDefaults{}
}

// Field names accepted by Merge.
const (
	FieldStart    = "start"
	FieldEnd      = "end"
	FieldBreak    = "break"
	FieldLocation = "location"
	FieldPlayers  = "players"
	FieldBlind    = "blind"
	FieldBuyIn    = "buy-in"
	FieldCashOut  = "cash-out"
)

// Merge overlays the fields of update named in set onto base.
func Merge(
	base, update models.RawFields,
	set map[string]bool,
) models.RawFields {
	if set[FieldStart] {
		base.StartDate = update.StartDate
	}

	if set[FieldEnd] {
		base.EndDate = update.EndDate
	}

	if set[FieldBreak] {
		base.BreakTime = update.BreakTime
	}

	if set[FieldLocation] {
		base.Location = update.Location
	}

	if set[FieldPlayers] {
		base.PlayerCount = update.PlayerCount
	}

	if set[FieldBlind] {
		base.BetUnit = update.BetUnit
	}

	if set[FieldBuyIn] {
		base.BuyInAmount = update.BuyInAmount
	}

	if set[FieldCashOut] {
		base.RemainingBalance = update.RemainingBalance
	}

	return base
}
