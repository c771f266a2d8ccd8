package app

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/record"
	"github.com/PolarBear-H/pokerpal/report"
)

// confirm asks the user to confirm a destructive action.
func confirm(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()

	return ok, err
}

// deleteAction handles the delete command which deletes one or more
// sessions by id. It requests confirmation before proceeding unless --yes is
// given.
func deleteAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoRecordIDs
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	records := e.repo.Records()

	var (
		ids     []uuid.UUID
		targets []models.Record
	)

	for _, prefix := range ctx.Args().Slice() {
		rec, err := record.Find(records, prefix)
		if err != nil {
			return err
		}

		ids = append(ids, rec.ID)
		targets = append(targets, *rec)
	}

	if !ctx.Bool("yes") {
		if !isTerminal(os.Stdin) {
			return errConfirmRequired
		}

		report.Records(config.Stdout, targets, e.money)

		ok, err := confirm("The sessions above will be deleted permanently")
		if err != nil {
			return err
		}

		if !ok {
			pterm.Info.Println("nothing was deleted")
			return nil
		}
	}

	remaining := record.Delete(records, ids...)

	err = e.repo.Commit(remaining)
	if err != nil {
		return err
	}

	n := len(records) - len(remaining)

	slog.Info("sessions deleted", slog.Int("count", n))

	report.Deleted(n)

	return nil
}
