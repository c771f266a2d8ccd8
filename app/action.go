package app

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/PolarBear-H/pokerpal/internal/config"
	"github.com/PolarBear-H/pokerpal/internal/logging"
	"github.com/PolarBear-H/pokerpal/internal/models"
	"github.com/PolarBear-H/pokerpal/internal/pathutil"
	"github.com/PolarBear-H/pokerpal/internal/record"
	"github.com/PolarBear-H/pokerpal/internal/ui"
	"github.com/PolarBear-H/pokerpal/store"
)

const (
	envNoColor         = "NO_COLOR"
	envPokerpalNoColor = "POKERPAL_NO_COLOR"

	metaConfig = "config"
	metaLogger = "logger"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func getConfig(ctx *cli.Context) *config.Config {
	cfg, ok := ctx.App.Metadata[metaConfig].(*config.Config)
	if !ok {
		panic("config is loaded in beforeAction")
	}

	return cfg
}

// env holds what a command needs to work with the stored records.
type env struct {
	cfg     *config.Config
	repo    *store.Repository
	manager *record.Manager
	money   *ui.Money
}

// dbPath returns the database file for the configured driver.
func dbPath(cfg *config.Config) string {
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}

	path := pathutil.DBFilePath()

	if cfg.Store.Driver == store.DriverSQLite {
		path = pathutil.WithExtension(path, ".sqlite")
	}

	return path
}

// openEnv opens the store, loads the records and applies the display
// preferences. Callers must call close when done.
func openEnv(ctx *cli.Context) (*env, error) {
	cfg := getConfig(ctx)

	kv, err := store.Open(cfg.Store.Driver, dbPath(cfg))
	if err != nil {
		return nil, err
	}

	repo := store.NewRepository(kv)

	err = repo.Load()
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	prefs, err := repo.Preferences()
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	ui.SetTheme(prefs.StyleCode)

	return &env{
		cfg:     cfg,
		repo:    repo,
		manager: record.New(cfg.Records.StrictNumbers),
		money:   newMoney(cfg, prefs),
	}, nil
}

// withEnv returns an action that runs action with the store open. Stats,
// template, blinds and prefs commands all go through it.
func withEnv(action func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}

		defer e.close()

		return action(ctx, e)
	}
}

func newMoney(cfg *config.Config, prefs models.Preferences) *ui.Money {
	return ui.NewMoney(
		firstNonEmptyString(prefs.Language, cfg.Display.Language),
		firstNonEmptyString(prefs.Currency, cfg.Display.Currency),
	)
}

func (e *env) close() {
	err := e.repo.Close()
	if err != nil {
		slog.Error("closing store", slog.Any("error", err))
	}
}

// postSaveCmd builds the command configured to run after a record is saved.
// It returns nil if no command is configured.
func postSaveCmd(cmdStr string, rec *models.Record) *exec.Cmd {
	cmdSlice, err := shellquote.Split(cmdStr)
	if err != nil {
		pterm.Warning.Println("unable to parse records.post_save_cmd option")
		return nil
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(
		os.Environ(),
		"POKERPAL_RECORD_ID="+rec.ID.String(),
		"POKERPAL_PROFIT="+models.FormatFloat(rec.ChipsWon),
	)
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout
	cmd.Stderr = config.Stderr

	return cmd
}

// runPostSave runs the post-save command. Its failure does not undo the
// save, so it is only reported.
func runPostSave(cfg *config.Config, rec *models.Record) {
	cmd := postSaveCmd(cfg.Records.PostSaveCmd, rec)
	if cmd == nil {
		return
	}

	err := cmd.Run()
	if err != nil {
		slog.Warn("post-save command failed", slog.Any("error", err))
		pterm.Warning.Printfln("post-save command failed: %s", err)
	}
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, getConfig(ctx).CLI.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	if _, exists := os.LookupEnv(envPokerpalNoColor); exists {
		ui.DisableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	configPath := firstNonEmptyString(
		ctx.String("config"),
		pathutil.ConfigFilePath(),
	)

	opts := []config.Option{config.WithDotEnv()}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return err
	}

	if cfg.CLI.NoColor {
		ui.DisableStyling()
	}

	closer := logging.Setup(logging.Config{
		Path:      pathutil.LogFilePath(),
		Level:     cfg.Log.Level,
		Component: "cli",
	})

	ctx.App.Metadata[metaConfig] = cfg
	ctx.App.Metadata[metaLogger] = closer

	slog.Debug("config loaded", slog.String("config", spew.Sdump(cfg)))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pokerpal")

	if closer, ok := ctx.App.Metadata[metaLogger].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
