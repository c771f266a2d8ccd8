package app

import (
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
)

var filterFlags = []cli.Flag{yearFlag, monthFlag, jsonFlag}

func statsCommand() *cli.Command {
	sub := func(name, usage string, view func(*cli.Context, *env) error) *cli.Command {
		return &cli.Command{
			Name:   name,
			Usage:  usage,
			Flags:  filterFlags,
			Action: withEnv(view),
		}
	}

	return &cli.Command{
		Name:   "stats",
		Usage:  "Summarise profit and time spent playing",
		Flags:  filterFlags,
		Action: withEnv(totalView),
		Subcommands: []*cli.Command{
			sub("total", "Print the totals for the selected sessions", totalView),
			sub("monthly", "Break the results down by month", monthlyView),
			sub("weekly", "Break the results down by day of the week", weeklyView),
			sub("blinds", "Break the results down by blind level", blindsView),
			sub("locations", "Break the results down by location", locationsView),
			sub("chart", "Chart cumulative profit, profit per session and win rate", chartView),
			sub("report", "Print every statistic as a single JSON document", reportView),
		},
	}
}

func settingsCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "template",
			Usage: "Manage the defaults used for new sessions",
			Subcommands: []*cli.Command{
				{
					Name:   "show",
					Usage:  "Print the saved template",
					Flags:  []cli.Flag{jsonFlag},
					Action: withEnv(templateShow),
				},
				{
					Name:   "set",
					Usage:  "Update the saved template",
					Flags:  templateFlags,
					Action: withEnv(templateSet),
				},
				{
					Name:   "clear",
					Usage:  "Remove the saved template",
					Action: withEnv(templateClear),
				},
			},
		},
		{
			Name:  "blinds",
			Usage: "Manage the list of blind levels offered when adding sessions",
			Subcommands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "Print the blind levels",
					Flags:  []cli.Flag{jsonFlag},
					Action: withEnv(blindsList),
				},
				{
					Name:      "add",
					Usage:     "Add a blind level",
					ArgsUsage: "SMALL BIG",
					Action:    withEnv(blindsAdd),
				},
				{
					Name:      "remove",
					Usage:     "Remove a blind level",
					ArgsUsage: "SMALL BIG",
					Action:    withEnv(blindsRemove),
				},
			},
		},
		{
			Name:  "prefs",
			Usage: "Manage display preferences stored with your sessions",
			Subcommands: []*cli.Command{
				{
					Name:   "show",
					Usage:  "Print the display preferences",
					Flags:  []cli.Flag{jsonFlag},
					Action: withEnv(prefsShow),
				},
				{
					Name:   "set",
					Usage:  "Update the display preferences",
					Flags:  []cli.Flag{currencyFlag, languageFlag, styleFlag},
					Action: withEnv(prefsSet),
				},
			},
		},
	}
}

// Get retrieves the pokerpal app instance.
func Get() *cli.App {
	commands := []*cli.Command{
		{
			Name:    "add",
			Aliases: []string{"a"},
			Usage:   "Record a poker session",
			Flags: append(
				[]cli.Flag{interactiveFlag, saveTemplateFlag},
				recordFlags...,
			),
			Action: addAction,
		},
		{
			Name:      "edit",
			Usage:     "Change a recorded session",
			ArgsUsage: "ID",
			Flags: append(
				[]cli.Flag{interactiveFlag, saveTemplateFlag},
				recordFlags...,
			),
			Action: editAction,
		},
		{
			Name:      "delete",
			Aliases:   []string{"rm"},
			Usage:     "Delete one or more sessions",
			ArgsUsage: "ID...",
			Flags:     []cli.Flag{yesFlag},
			Action:    deleteAction,
		},
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "List sessions, newest first",
			Flags:   filterFlags,
			Action:  listAction,
		},
		{
			Name:   "tabs",
			Usage:  "Print the years with sessions and the months of the selected year",
			Flags:  []cli.Flag{yearFlag, jsonFlag},
			Action: tabsAction,
		},
		statsCommand(),
		{
			Name:      "import",
			Usage:     "Replace all sessions with the ones in a JSON file",
			ArgsUsage: "FILE|-",
			Action:    importAction,
		},
		{
			Name:  "export",
			Usage: "Print all sessions as JSON",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write to this file instead of standard output",
				},
			},
			Action: exportAction,
		},
	}

	commands = append(commands, settingsCommands()...)
	commands = append(commands, &cli.Command{
		Name:   "edit-config",
		Usage:  "Edit the configuration file",
		Action: editConfigAction,
	})

	return &cli.App{
		Name: "pokerpal",
		Usage: `
		Pokerpal keeps a log of your poker sessions and tells you how you are
		doing: profit per hour and per session, win rate, and results by month,
		weekday, stake and venue.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Metadata:             map[string]any{},
		Commands:             commands,
		Flags: []cli.Flag{
			configFlag,
			dbFlag,
			driverFlag,
			strictFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
