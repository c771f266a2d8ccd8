// Package report renders records and statistics for the terminal
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/timeutil"
	"github.com/PolarBear-H/pokerpal/internal/ui"
	"github.com/PolarBear-H/pokerpal/stats"
)

const (
	noRecordsMsg = "No sessions found. Add one with 'pokerpal add'"
)

// Saved reports a successful save.
func Saved(rec *models.Record, money *ui.Money) {
	pterm.Success.Printfln(
		"session %s saved: %s over %s",
		rec.ShortID(),
		ui.Signed(rec.ChipsWon, money.Format(rec.ChipsWon)),
		timeutil.FormatHours(rec.Duration),
	)
}

func Deleted(n int) {
	pterm.Success.Printfln("%d session(s) deleted", n)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Records prints a table of records in the order given.
func Records(w io.Writer, records []models.Record, money *ui.Money) {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	tableBody := make([][]string, 0, len(records)+1)

	tableBody = append(tableBody, []string{
		"ID", "START DATE", "WHEN", "LOCATION", "BLINDS",
		"PLAYERS", "DURATION", "BUY-IN", "CASH-OUT", "PROFIT",
	})

	for i := range records {
		r := &records[i]

		players := ""
		if r.PlayerCount > 0 {
			players = strconv.Itoa(r.PlayerCount)
		}

		tableBody = append(tableBody, []string{
			r.ShortID(),
			r.StartDate.Format(timeutil.RowLayout),
			ui.Ago(r.StartDate),
			r.Location,
			r.BetUnit,
			players,
			timeutil.FormatHours(r.Duration),
			money.Format(r.BuyInAmount),
			money.Format(r.RemainingBalance),
			ui.Signed(r.ChipsWon, money.Format(r.ChipsWon)),
		})
	}

	ui.PrintTable(tableBody, w)
}

// Summary renders the totals for a collection.
func Summary(s stats.Summary, money *ui.Money) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("Summary")))

	b.WriteString(fmt.Sprintf(
		"Total profit: %s\n",
		ui.Signed(s.TotalProfit, money.Format(s.TotalProfit)),
	))

	b.WriteString(fmt.Sprintf(
		"Time played: %s (%s h)\n",
		ui.Green(timeutil.HumanHours(s.TotalDuration)),
		money.Number(s.TotalDuration),
	))

	b.WriteString(fmt.Sprintf(
		"Hourly profit: %s\n",
		ui.Signed(s.HourlyProfit, money.Format(s.HourlyProfit)),
	))

	b.WriteString(fmt.Sprintf(
		"Profit per session: %s\n",
		ui.Signed(s.PerHandProfit, money.Format(s.PerHandProfit)),
	))

	b.WriteString(fmt.Sprintln("Sessions:", ui.Green(s.TotalHands)))

	b.WriteString(fmt.Sprintf(
		"Winning sessions: %s (%s)\n",
		ui.Green(s.TotalWins),
		money.Percent(s.WinRate),
	))

	return b.String()
}

// Periods prints a table of grouped statistics under title.
func Periods(w io.Writer, title string, periods []stats.Period, money *ui.Money) {
	if len(periods) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	fmt.Fprintln(w, ui.Blue(title))

	tableBody := make([][]string, 0, len(periods)+1)

	tableBody = append(tableBody, []string{
		strings.ToUpper(title), "SESSIONS", "TIME", "PROFIT", "HOURLY", "PER SESSION",
	})

	for i := range periods {
		p := &periods[i]

		tableBody = append(tableBody, []string{
			p.Label,
			strconv.Itoa(p.TotalGames),
			timeutil.FormatHours(p.TotalDuration),
			ui.Signed(p.TotalProfit, money.Format(p.TotalProfit)),
			ui.Signed(p.HourlyProfit, money.Format(p.HourlyProfit)),
			ui.Signed(p.PerGameProfit, money.Format(p.PerGameProfit)),
		})
	}

	ui.PrintTable(tableBody, w)
}

// PeriodChart renders the total profit of each period as a bar chart.
func PeriodChart(title string, periods []stats.Period) string {
	bars := make([]ui.Bar, len(periods))

	for i := range periods {
		bars[i] = ui.Bar{
			Label: periods[i].Label,
			Value: timeutil.Round(periods[i].TotalProfit),
		}
	}

	return ui.BarChart(title, bars)
}

// SeriesChart renders a chart series as a bar chart, one bar per point.
func SeriesChart(title string, points []stats.Point) string {
	bars := make([]ui.Bar, len(points))

	for i := range points {
		bars[i] = ui.Bar{
			Label: points[i].Label,
			Value: timeutil.Round(points[i].Value),
		}
	}

	return ui.BarChart(title, bars)
}
