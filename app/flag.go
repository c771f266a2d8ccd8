package app

import (
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/facet"
	"github.com/PolarBear-H/pokerpal/internal/record"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Use a different config file",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file (overrides store.path)",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Database backend: bolt, sqlite or memory (overrides store.driver)",
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Reject amounts that are not valid numbers instead of saving them as zero",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yearFlag = &cli.StringFlag{
		Name:    "year",
		Aliases: []string{"y"},
		Usage:   "Only include sessions started in this year (e.g. 2024)",
		Value:   facet.All,
	}

	monthFlag = &cli.StringFlag{
		Name:    "month",
		Aliases: []string{"m"},
		Usage:   "Only include sessions started in this month (e.g. Mar)",
		Value:   facet.All,
	}

	yesFlag = &cli.BoolFlag{
		Name:  "yes",
		Usage: "Do not ask for confirmation",
	}

	interactiveFlag = &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Fill in the session with a form",
	}

	saveTemplateFlag = &cli.BoolFlag{
		Name:  "save-template",
		Usage: "Use the values of this session as defaults for new sessions",
	}
)

// recordFlags are shared by add, edit and template set. Their names match
// the field names accepted by record.Merge.
var recordFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  record.FieldStart,
		Usage: "When the session started (e.g. '2024-03-01 18:00' or 'yesterday 8pm')",
	},
	&cli.StringFlag{
		Name:  record.FieldEnd,
		Usage: "When the session ended (default: now)",
	},
	&cli.StringFlag{
		Name:  record.FieldBreak,
		Usage: "Hours spent on breaks",
	},
	&cli.StringFlag{
		Name:    record.FieldLocation,
		Aliases: []string{"l"},
		Usage:   "Where the session was played",
	},
	&cli.StringFlag{
		Name:  record.FieldPlayers,
		Usage: "Number of players at the table",
	},
	&cli.StringFlag{
		Name:    record.FieldBlind,
		Aliases: []string{"b"},
		Usage:   "Blind level (e.g. 1/2)",
	},
	&cli.StringFlag{
		Name:  record.FieldBuyIn,
		Usage: "Total amount bought in for",
	},
	&cli.StringFlag{
		Name:  record.FieldCashOut,
		Usage: "Amount left at the end of the session",
	},
}

var templateFlags = []cli.Flag{
	recordFlags[2],
	recordFlags[3],
	recordFlags[4],
	recordFlags[5],
	recordFlags[6],
}

var (
	currencyFlag = &cli.StringFlag{
		Name:  "currency",
		Usage: "ISO 4217 currency code used to display amounts (e.g. EUR)",
	}

	languageFlag = &cli.StringFlag{
		Name:  "language",
		Usage: "Language used to format numbers (e.g. en, de)",
	}

	styleFlag = &cli.StringFlag{
		Name:  "style",
		Usage: "Colour theme: dark or light",
	}
)
