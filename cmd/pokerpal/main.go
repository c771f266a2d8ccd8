package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/PolarBear-H/pokerpal/app"
	"github.com/PolarBear-H/pokerpal/internal/apperr"
	"github.com/PolarBear-H/pokerpal/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)

		if apperr.IsRetryable(err) {
			pterm.Info.Println("nothing was lost: try the command again")
		}

		os.Exit(1)
	}
}
