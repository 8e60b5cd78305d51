package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/budget/internal/cli"
	"github.com/Makepad-fr/budget/internal/config"
	"github.com/Makepad-fr/budget/internal/items"
	"github.com/Makepad-fr/budget/internal/logger"
	"github.com/Makepad-fr/budget/internal/store/jsonstore"
	"github.com/Makepad-fr/budget/internal/tui"
	"github.com/Makepad-fr/budget/internal/ui"
)

func main() {
	config.LoadEnvFile()
	cfg := config.Load()
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		os.Exit(2)
	}
	os.Exit(run(cfg))
}

// parseFlags applies the optional root flags over cfg. With no arguments cfg
// is left as the environment set it.
func parseFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("budget", flag.ContinueOnError)
	fs.StringVar(&cfg.DataFile, "file", cfg.DataFile, "path of the JSON data file")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "path of the diagnostics log (empty disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "classic, neon or mono")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "line-by-line menu instead of full screen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return nil
}

func run(cfg *config.Config) int {
	styles := ui.NewStyles(lipgloss.DefaultRenderer(), cfg.Theme)
	errStyles := ui.NewStyles(lipgloss.NewRenderer(os.Stderr), cfg.Theme)

	if err := cfg.Validate(); err != nil {
		errStyles.Fail(os.Stderr, err.Error())
		return 2
	}

	log, closer, err := logger.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		errStyles.Fail(os.Stderr, err.Error())
		return 1
	}
	defer closer.Close()
	log = logger.Component(log, "app")
	log.Info().Str("config", cfg.String()).Msg("starting")

	store, err := jsonstore.New(cfg.DataFile, log)
	if err != nil {
		errStyles.Fail(os.Stderr, "store: "+err.Error())
		return 1
	}
	repo, err := items.Open(store)
	if err != nil {
		log.Error().Err(err).Msg("cannot load data file")
		errStyles.Fail(os.Stderr, err.Error())
		return 1
	}
	router := cli.NewRouter(repo, log)

	interactive := ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stdout)
	if cfg.Plain || !interactive {
		code := cli.Run(router, cli.Options{
			In:     os.Stdin,
			Out:    os.Stdout,
			Styles: styles,
			Clear:  ui.IsTerminal(os.Stdout),
		})
		log.Info().Int("exit_code", code).Msg("stopped")
		return code
	}

	farewell, err := tui.Run(router, styles)
	if err != nil {
		log.Error().Err(err).Msg("tui")
		errStyles.Fail(os.Stderr, "tui: "+err.Error())
		return 1
	}
	if farewell != "" {
		styles.OK(os.Stdout, farewell)
	}
	log.Info().Msg("stopped")
	return 0
}
