package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
	"github.com/PolarBear-H/pokerpal/report"
	"github.com/PolarBear-H/pokerpal/stats"
)

func totalView(ctx *cli.Context, e *env) error {
	summary := stats.Total(filtered(ctx, e))

	if ctx.Bool("json") {
		return printJSON(summary)
	}

	fmt.Fprint(config.Stdout, report.Summary(summary, e.money))

	return nil
}

// periodView prints the periods computed by group as a table and a chart.
func periodView(
	title string,
	group func(ctx *cli.Context, e *env) []stats.Period,
) func(ctx *cli.Context, e *env) error {
	return func(ctx *cli.Context, e *env) error {
		periods := group(ctx, e)

		if ctx.Bool("json") {
			if periods == nil {
				periods = []stats.Period{}
			}

			return printJSON(periods)
		}

		report.Periods(config.Stdout, title, periods, e.money)

		fmt.Fprintln(config.Stdout, report.PeriodChart(title+" profit", periods))

		return nil
	}
}

var (
	monthlyView = periodView("Month", func(ctx *cli.Context, e *env) []stats.Period {
		return stats.Monthly(filtered(ctx, e))
	})

	weeklyView = periodView("Weekday", func(ctx *cli.Context, e *env) []stats.Period {
		return stats.Weekly(filtered(ctx, e))
	})

	blindsView = periodView("Blinds", func(ctx *cli.Context, e *env) []stats.Period {
		return stats.ByBlindLevel(filtered(ctx, e))
	})

	locationsView = periodView("Location", func(ctx *cli.Context, e *env) []stats.Period {
		return stats.ByLocation(filtered(ctx, e))
	})
)

type chartSeries struct {
	Cumulative []stats.Point `json:"cumulative"`
	PerRecord  []stats.Point `json:"per_record"`
	WinRate    []stats.Point `json:"win_rate"`
}

func chartView(ctx *cli.Context, e *env) error {
	records := filtered(ctx, e)

	series := chartSeries{
		Cumulative: stats.Cumulative(records),
		PerRecord:  stats.PerRecord(records),
		WinRate:    stats.WinRateSeries(records),
	}

	if ctx.Bool("json") {
		return printJSON(series)
	}

	fmt.Fprintln(config.Stdout, report.SeriesChart("Cumulative profit", series.Cumulative))
	fmt.Fprintln(config.Stdout, report.SeriesChart("Profit per session", series.PerRecord))
	fmt.Fprintln(config.Stdout, report.SeriesChart("Win rate (%)", series.WinRate))

	return nil
}

// reportView prints every statistic at once.
func reportView(ctx *cli.Context, e *env) error {
	r := stats.Compute(filtered(ctx, e))

	if ctx.Bool("json") {
		b, err := r.ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	fmt.Fprintln(config.Stdout, report.Summary(r.Total, e.money))
	report.Periods(config.Stdout, "Month", r.Monthly, e.money)
	report.Periods(config.Stdout, "Weekday", r.Weekly, e.money)
	fmt.Fprintln(config.Stdout, report.SeriesChart("Cumulative profit", r.Cumulative))

	return nil
}
