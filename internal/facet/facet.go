// Package facet derives the year and month filters offered for a record
// collection and applies them
package facet

import (
	"slices"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/orderedmap"
	"github.com/PolarBear-H/pokerpal/internal/timeutil"
)

// All is the facet value that matches every record.
const All = "All"

// Year returns the four-digit year of the record's start date.
func Year(r *models.Record) string {
	return r.Start().Format(timeutil.YearLayout)
}

// Month returns the three-letter English abbreviation of the record's start
// month.
func Month(r *models.Record) string {
	return r.Start().Format(timeutil.MonthAbbrLayout)
}

func matches(selected, value string) bool {
	return selected == All || selected == value
}

// Tabs returns the selectable years and months for records. Years come from
// the whole collection in order of first occurrence. Months come from the
// records in selectedYear, de-duplicated in order of first occurrence and
// then reversed. Both lists start with All.
func Tabs(records []models.Record, selectedYear string) (years, months []string) {
	yearValues := make([]string, 0, len(records))
	monthValues := make([]string, 0, len(records))

	for i := range records {
		r := &records[i]

		y := Year(r)
		yearValues = append(yearValues, y)

		if matches(selectedYear, y) {
			monthValues = append(monthValues, Month(r))
		}
	}

	years = append([]string{All}, orderedmap.Distinct(yearValues)...)

	monthValues = orderedmap.Distinct(monthValues)
	slices.Reverse(monthValues)

	months = append([]string{All}, monthValues...)

	return years, months
}

// Filter returns the records whose start year and month match the selected
// facets. Matching is by exact string comparison.
func Filter(records []models.Record, year, month string) []models.Record {
	filtered := make([]models.Record, 0, len(records))

	for i := range records {
		r := &records[i]

		if matches(year, Year(r)) && matches(month, Month(r)) {
			filtered = append(filtered, *r)
		}
	}

	return filtered
}
