package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
	"github.com/PolarBear-H/pokerpal/internal/facet"
	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/report"
)

// filtered returns the records matching the --year and --month flags.
func filtered(ctx *cli.Context, e *env) []models.Record {
	return facet.Filter(
		e.repo.Records(),
		ctx.String("year"),
		ctx.String("month"),
	)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// listAction handles the list command and prints a table of the sessions
// matching the year and month filters.
func listAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	records := filtered(ctx, e)

	if ctx.Bool("json") {
		if records == nil {
			records = []models.Record{}
		}

		return printJSON(records)
	}

	report.Records(config.Stdout, records, e.money)

	return nil
}

type tabs struct {
	Years  []string `json:"years"`
	Months []string `json:"months"`
}

// tabsAction prints the years that have sessions and the months of the
// selected year.
func tabsAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	var t tabs

	t.Years, t.Months = facet.Tabs(e.repo.Records(), ctx.String("year"))

	if ctx.Bool("json") {
		return printJSON(t)
	}

	fmt.Fprintf(config.Stdout, "%s %s\n", pterm.Bold.Sprint("Years:"), strings.Join(t.Years, "  "))
	fmt.Fprintf(config.Stdout, "%s %s\n", pterm.Bold.Sprint("Months:"), strings.Join(t.Months, "  "))

	return nil
}
