package app

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/record"
	"github.com/PolarBear-H/pokerpal/internal/timeutil"
	"github.com/PolarBear-H/pokerpal/report"
)

const formDateLayout = "2006-01-02 15:04"

var fieldNames = []string{
	record.FieldStart,
	record.FieldEnd,
	record.FieldBreak,
	record.FieldLocation,
	record.FieldPlayers,
	record.FieldBlind,
	record.FieldBuyIn,
	record.FieldCashOut,
}

// rawFromFlags reads record fields from the command-line flags. It also
// returns the names of the flags that were set.
func rawFromFlags(
	ctx *cli.Context,
	now time.Time,
) (models.RawFields, map[string]bool, error) {
	set := make(map[string]bool)

	for _, name := range fieldNames {
		if ctx.IsSet(name) {
			set[name] = true
		}
	}

	raw := models.RawFields{
		BreakTime:        ctx.String(record.FieldBreak),
		Location:         ctx.String(record.FieldLocation),
		PlayerCount:      ctx.String(record.FieldPlayers),
		BetUnit:          ctx.String(record.FieldBlind),
		BuyInAmount:      ctx.String(record.FieldBuyIn),
		RemainingBalance: ctx.String(record.FieldCashOut),
	}

	var err error

	if set[record.FieldStart] {
		raw.StartDate, err = timeutil.FromStr(ctx.String(record.FieldStart), now)
		if err != nil {
			return raw, nil, err
		}
	}

	if set[record.FieldEnd] {
		raw.EndDate, err = timeutil.FromStr(ctx.String(record.FieldEnd), now)
		if err != nil {
			return raw, nil, err
		}
	}

	return raw, set, nil
}

// addAction handles the add command which records a new session. Fields
// that are not given come from the saved template.
func addAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	tmpl, err := e.repo.Template()
	if err != nil {
		return err
	}

	now := e.manager.Now()

	update, set, err := rawFromFlags(ctx, now)
	if err != nil {
		return err
	}

	raw := record.Merge(e.manager.Blank(tmpl), update, set)

	return saveRecord(ctx, e, nil, raw)
}

// editAction handles the edit command. Only the fields given as flags
// change unless the form is used.
func editAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errRecordIDRequired
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	existing, err := record.Find(e.repo.Records(), ctx.Args().First())
	if err != nil {
		return err
	}

	update, set, err := rawFromFlags(ctx, e.manager.Now())
	if err != nil {
		return err
	}

	raw := record.Merge(models.RawFromRecord(existing), update, set)

	return saveRecord(ctx, e, existing, raw)
}

func saveRecord(
	ctx *cli.Context,
	e *env,
	existing *models.Record,
	raw models.RawFields,
) error {
	levels, err := e.repo.BlindLevels()
	if err != nil {
		return err
	}

	if ctx.Bool("interactive") {
		raw, err = fillForm(raw, levels, e.manager.Now())
		if err != nil {
			return err
		}
	}

	warnUnknownBlind(levels, raw.BetUnit)

	records, rec, err := e.manager.Save(e.repo.Records(), existing, raw)
	if err != nil {
		return err
	}

	err = e.repo.Commit(records)
	if err != nil {
		return err
	}

	slog.Info(
		"session saved",
		slog.String("id", rec.ID.String()),
		slog.Bool("edited", existing != nil),
	)

	if ctx.Bool("save-template") {
		err = e.repo.SaveTemplate(record.CreateTemplate(raw))
		if err != nil {
			return err
		}

		pterm.Info.Println("template saved")
	}

	report.Saved(&rec, e.money)

	runPostSave(e.cfg, &rec)

	return nil
}

func warnUnknownBlind(levels []models.BlindLevel, betUnit string) {
	if betUnit == "" {
		return
	}

	if slices.ContainsFunc(levels, func(l models.BlindLevel) bool {
		return l.Label() == betUnit
	}) {
		return
	}

	pterm.Warning.Printfln(
		"blind level %s is not in your list: add it with 'pokerpal blinds add'",
		betUnit,
	)
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	_, err := cast.ToFloat64E(s)

	return err
}

// fillForm lets the user review and change raw in an interactive form.
func fillForm(
	raw models.RawFields,
	levels []models.BlindLevel,
	now time.Time,
) (models.RawFields, error) {
	start := raw.StartDate.Format(formDateLayout)
	end := raw.EndDate.Format(formDateLayout)

	validateDate := func(s string) error {
		_, err := timeutil.FromStr(s, now)
		return err
	}

	blindOpts := []huh.Option[string]{huh.NewOption("None", "")}

	known := false

	for _, l := range levels {
		blindOpts = append(blindOpts, huh.NewOption(l.Label(), l.Label()))
		known = known || l.Label() == raw.BetUnit
	}

	if !known && raw.BetUnit != "" {
		blindOpts = append(blindOpts, huh.NewOption(raw.BetUnit, raw.BetUnit))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("End").
				Value(&end).
				Validate(validateDate),
			huh.NewInput().
				Title("Break (hours)").
				Value(&raw.BreakTime).
				Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Location").
				Value(&raw.Location),
			huh.NewSelect[string]().
				Title("Blind level").
				Options(blindOpts...).
				Value(&raw.BetUnit),
			huh.NewInput().
				Title("Players").
				Value(&raw.PlayerCount).
				Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Buy-in").
				Value(&raw.BuyInAmount).
				Validate(validateNumber),
			huh.NewInput().
				Title("Cash-out").
				Value(&raw.RemainingBalance).
				Validate(validateNumber),
		),
	)

	err := form.Run()
	if err != nil {
		return raw, err
	}

	raw.StartDate, err = timeutil.FromStr(start, now)
	if err != nil {
		return raw, err
	}

	raw.EndDate, err = timeutil.FromStr(end, now)

	return raw, err
}
