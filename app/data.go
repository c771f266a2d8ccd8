package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
	"github.com/PolarBear-H/pokerpal/internal/osutil"
)

// importAction replaces all sessions with the ones in a JSON file, or in
// standard input when the file name is "-".
func importAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errImportSource
	}

	var (
		data []byte
		err  error
	)

	if src := ctx.Args().First(); src == "-" {
		data, err = io.ReadAll(config.Stdin)
	} else {
		data, err = os.ReadFile(src)
	}

	if err != nil {
		return err
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	n, err := e.repo.Import(data)
	if err != nil {
		return err
	}

	slog.Info("sessions imported", slog.Int("count", n))

	pterm.Success.Printfln("%d session(s) imported", n)

	return nil
}

// exportAction prints all sessions as JSON, or writes them to --output.
func exportAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	b, err := e.repo.Export()
	if err != nil {
		return err
	}

	if out := ctx.String("output"); out != "" {
		return os.WriteFile(out, append(b, '\n'), osutil.FilePermission)
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}
