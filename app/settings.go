package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/record"
	"github.com/PolarBear-H/pokerpal/internal/ui"
)

func templateShow(ctx *cli.Context, e *env) error {
	tmpl, err := e.repo.Template()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(tmpl)
	}

	if tmpl.IsZero() {
		pterm.Info.Println("no template saved")
		return nil
	}

	ui.PrintTable([][]string{
		{"BREAK", "BLINDS", "LOCATION", "PLAYERS", "BUY-IN"},
		{tmpl.BreakTime, tmpl.BlindLevel, tmpl.Location, tmpl.PlayerCount, tmpl.BuyInAmount},
	}, config.Stdout)

	return nil
}

// templateSet updates the template with the values given as flags. Values
// that are not given keep their saved value.
func templateSet(ctx *cli.Context, e *env) error {
	tmpl, err := e.repo.Template()
	if err != nil {
		return err
	}

	raw, set, err := rawFromFlags(ctx, e.manager.Now())
	if err != nil {
		return err
	}

	raw = record.Merge(e.manager.Blank(tmpl), raw, set)

	err = e.repo.SaveTemplate(record.CreateTemplate(raw))
	if err != nil {
		return err
	}

	pterm.Success.Println("template saved")

	return nil
}

func templateClear(_ *cli.Context, e *env) error {
	err := e.repo.ClearTemplate()
	if err != nil {
		return err
	}

	pterm.Success.Println("template cleared")

	return nil
}

func blindsList(ctx *cli.Context, e *env) error {
	levels, err := e.repo.BlindLevels()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(levels)
	}

	labels := make([]string, len(levels))
	for i := range levels {
		labels[i] = levels[i].Label()
	}

	fmt.Fprintln(config.Stdout, strings.Join(labels, "  "))

	return nil
}

// blindArgs parses the small and big blind arguments.
func blindArgs(ctx *cli.Context) (models.BlindLevel, error) {
	if ctx.NArg() != 2 {
		return models.BlindLevel{}, errBlindArgs
	}

	var values [2]float64

	for i, arg := range ctx.Args().Slice() {
		v, err := cast.ToFloat64E(strings.TrimSpace(arg))
		if err != nil {
			return models.BlindLevel{}, errInvalidBlindValue.Fmt(arg)
		}

		values[i] = v
	}

	return models.BlindLevel{SmallBlind: values[0], BigBlind: values[1]}, nil
}

func blindsAdd(ctx *cli.Context, e *env) error {
	level, err := blindArgs(ctx)
	if err != nil {
		return err
	}

	levels, err := e.repo.BlindLevels()
	if err != nil {
		return err
	}

	levels, err = record.AddBlindLevel(levels, level)
	if err != nil {
		return err
	}

	err = e.repo.SaveBlindLevels(levels)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("blind level %s added", level.Label())

	return nil
}

func blindsRemove(ctx *cli.Context, e *env) error {
	level, err := blindArgs(ctx)
	if err != nil {
		return err
	}

	levels, err := e.repo.BlindLevels()
	if err != nil {
		return err
	}

	err = e.repo.SaveBlindLevels(record.RemoveBlindLevel(levels, level))
	if err != nil {
		return err
	}

	pterm.Success.Printfln("blind level %s removed", level.Label())

	return nil
}

func prefsShow(ctx *cli.Context, e *env) error {
	prefs, err := e.repo.Preferences()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(prefs)
	}

	ui.PrintTable([][]string{
		{"CURRENCY", "LANGUAGE", "STYLE"},
		{
			firstNonEmptyString(prefs.Currency, e.cfg.Display.Currency+" (config)"),
			firstNonEmptyString(prefs.Language, e.cfg.Display.Language+" (config)"),
			prefs.StyleCode,
		},
	}, config.Stdout)

	return nil
}

// prefsSet updates the preferences given as flags and keeps the others.
func prefsSet(ctx *cli.Context, e *env) error {
	prefs, err := e.repo.Preferences()
	if err != nil {
		return err
	}

	if ctx.IsSet("currency") {
		prefs.Currency = strings.ToUpper(ctx.String("currency"))
	}

	if ctx.IsSet("language") {
		prefs.Language = ctx.String("language")
	}

	if ctx.IsSet("style") {
		prefs.StyleCode = ctx.String("style")
	}

	// reuse the config rules so that a bad preference cannot break display
	check := *e.cfg
	check.Display.Currency = firstNonEmptyString(prefs.Currency, check.Display.Currency)
	check.Display.Language = firstNonEmptyString(prefs.Language, check.Display.Language)

	err = check.Validate()
	if err != nil {
		return err
	}

	err = e.repo.SavePreferences(prefs)
	if err != nil {
		return err
	}

	pterm.Success.Println("preferences saved")

	return nil
}
