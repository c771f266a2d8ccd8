// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// Layouts used for bucketing and labelling records.
const (
	MonthKeyLayout   = "2006-01"
	MonthAbbrLayout  = "Jan"
	YearLayout       = "2006"
	PointLabelLayout = "2006/01/02"
	RowLayout        = "Jan 02, 2006 03:04 PM"
)

// Weekdays are the short weekday names in Sunday-first order.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// Round2 rounds f to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// HoursBetween returns the wall-clock difference between end and start in
// hours, rounded to two decimal places. It is negative if end is before
// start.
func HoursBetween(end, start time.Time) float64 {
	return Round2(end.Sub(start).Hours())
}

// Weekday returns the short name of the weekday of t.
func Weekday(t time.Time) string {
	return Weekdays[t.Weekday()]
}

// WeekdayIndex returns the Sunday-first position of a short weekday name, or
// -1 if name is not a weekday.
func WeekdayIndex(name string) int {
	for i, v := range Weekdays {
		if v == name {
			return i
		}
	}

	return -1
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatHours renders fractional hours as "3 h 30 m".
func FormatHours(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}

	hrs, mins := MinsToHoursAndMins(Round(hours * minutesInAnHour))

	return fmt.Sprintf("%s%d h %d m", sign, hrs, mins)
}

// HumanHours renders fractional hours with durafmt, limited to hours and
// minutes.
func HumanHours(hours float64) string {
	d := time.Duration(hours * float64(time.Hour)).Round(time.Minute)
	if d == 0 {
		return "0 minutes"
	}

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

// FromStr parses an absolute or relative date such as "2024-01-02 18:00" or
// "yesterday 8pm" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyDate
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParsingDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
