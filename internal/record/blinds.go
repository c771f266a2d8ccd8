package record

import (
	"slices"

	"github.com/PolarBear-H/pokerpal/internal/models"
)

// AddBlindLevel inserts level into levels, keeping the list sorted by small
// blind then big blind.
func AddBlindLevel(
	levels []models.BlindLevel,
	level models.BlindLevel,
) ([]models.BlindLevel, error) {
	if level.SmallBlind <= 0 || level.BigBlind < level.SmallBlind {
		return nil, errInvalidBlindLevel.Fmt(level.Label())
	}

	if slices.Contains(levels, level) {
		return nil, errDuplicateBlindLevel.Fmt(level.Label())
	}

	updated := append(slices.Clone(levels), level)

	SortBlindLevels(updated)

	return updated, nil
}

// RemoveBlindLevel returns levels without level.
func RemoveBlindLevel(
	levels []models.BlindLevel,
	level models.BlindLevel,
) []models.BlindLevel {
	return slices.DeleteFunc(slices.Clone(levels), func(b models.BlindLevel) bool {
		return b == level
	})
}

// SortBlindLevels sorts levels ascending by small blind, then big blind.
func SortBlindLevels(levels []models.BlindLevel) {
	slices.SortFunc(levels, func(a, b models.BlindLevel) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}
