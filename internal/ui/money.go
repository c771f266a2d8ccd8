package ui

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats amounts in a currency for a display language.
type Money struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewMoney returns a formatter for the ISO 4217 currency code and BCP 47
// language tag. Invalid values fall back to US dollars and English.
func NewMoney(lang, code string) *Money {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	return &Money{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Format returns v with the currency symbol.
func (m *Money) Format(v float64) string {
	return m.printer.Sprint(currency.Symbol(m.unit.Amount(v)))
}

// Number returns v with two decimals and the language's digit grouping.
func (m *Money) Number(v float64) string {
	return m.printer.Sprintf("%.2f", v)
}

// Percent formats a 0-100 value.
func (m *Money) Percent(v float64) string {
	return m.printer.Sprintf("%.1f%%", v)
}

// Ago describes t relative to now, e.g. "3 days ago".
func Ago(t time.Time) string {
	return humanize.Time(t)
}
