package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/kmacinski/harvest/internal/app"
	"github.com/kmacinski/harvest/internal/config"
	"github.com/kmacinski/harvest/internal/harvest"
	"github.com/kmacinski/harvest/internal/logging"
	"github.com/kmacinski/harvest/internal/ui"
	"github.com/kmacinski/harvest/internal/window"
	"golang.org/x/term"
)

var (
	version = "dev"
)

func main() {
	// Parse flags
	var (
		showVersion bool
		showHelp    bool
		printOnly   bool
		configPath  string
		logPath     string
		month       string
		rangeName   string
		entriesPath string
	)

	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&printOnly, "p", false, "Print entries and exit")
	flag.BoolVar(&printOnly, "print", false, "Print entries and exit")
	flag.StringVar(&configPath, "c", config.DefaultPath(), "Config file")
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Config file")
	flag.StringVar(&logPath, "log", "", "Diagnostic log file")
	flag.StringVar(&month, "m", "", "Select a month (YYYY-MM)")
	flag.StringVar(&month, "month", "", "Select a month (YYYY-MM)")
	flag.StringVar(&rangeName, "r", "", "Initial range: today, week, month")
	flag.StringVar(&rangeName, "range", "", "Initial range: today, week, month")
	flag.StringVar(&entriesPath, "entries", "", "Read entries from a JSON file instead of the API")
	flag.Parse()

	if showVersion {
		fmt.Printf("harvest %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if err := run(options{
		printOnly:   printOnly,
		configPath:  configPath,
		logPath:     logPath,
		month:       month,
		rangeName:   rangeName,
		entriesPath: entriesPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	printOnly   bool
	configPath  string
	logPath     string
	month       string
	rangeName   string
	entriesPath string
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logPath != "" {
		cfg.Log.File = opts.logPath
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logging.Component(logger, "main")
	log.Info("starting", "version", version, "config", opts.configPath)

	now := time.Now()
	state, err := initialState(now, opts.month, opts.rangeName)
	if err != nil {
		return err
	}

	src, err := newSource(cfg, opts.entriesPath)
	if err != nil {
		return err
	}

	if opts.printOnly {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return app.Print(ctx, os.Stdout, src, state.CurrentRange(now), ui.NewStyles(cfg.Palette()))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("not a terminal; use -print for plain output")
	}

	focus, err := cfg.FocusPair()
	if err != nil {
		return fmt.Errorf("list.focus_pair: %w", err)
	}

	application := app.New(app.Options{
		Palette: cfg.Palette(),
		Log:     logger,
		Root: app.MainRoot(app.MainConfig{
			Source:    src,
			State:     state,
			FocusPair: focus,
			Clip:      clipboard.WriteAll,
		}),
	})

	// Restore the terminal when killed while waiting for a key
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)
	go func() {
		if sig, ok := <-sigs; ok {
			log.Warn("signal received", "signal", sig.String())
			application.Interrupt()
		}
	}()

	err = application.Run()
	switch {
	case errors.Is(err, window.ErrInterrupted):
		log.Info("interrupted from the keyboard")
		return nil
	case err != nil:
		log.Error("application stopped", "error", err)
		return err
	}
	log.Info("bye")
	return nil
}

func initialState(now time.Time, month, rangeName string) (*app.State, error) {
	state := app.NewState(now)
	if rangeName != "" {
		kind, ok := app.ParseRangeKind(rangeName)
		if !ok {
			return nil, fmt.Errorf("unknown range %q", rangeName)
		}
		state.SelectRange(kind)
	}
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q, want YYYY-MM", month)
		}
		state.SelectMonth(t.Year(), t.Month())
	}
	return state, nil
}

func newSource(cfg config.Config, entriesPath string) (harvest.Source, error) {
	if entriesPath != "" {
		entries, err := harvest.LoadFile(entriesPath)
		if err != nil {
			return nil, err
		}
		return entries, nil
	}
	creds := harvest.Credentials{
		AccountID: cfg.Harvest.AccountID,
		Token:     cfg.Harvest.Token,
	}
	client, err := harvest.NewClient(creds, cfg.Harvest.BaseURL, cfg.Harvest.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("%w (set %s and %s, or use -entries)", err, config.EnvAccessToken, config.EnvAccountID)
	}
	return client, nil
}

func printHelp() {
	fmt.Println(`harvest - terminal client for Harvest time entries

Usage:
  harvest [flags]

Flags:
  -c, --config      Config file (default: $XDG_CONFIG_HOME/harvest/config.yaml)
      --log         Diagnostic log file (default: harvest.log)
  -m, --month       Select a month (YYYY-MM)
  -r, --range       Initial range: today, week, month
      --entries     Read entries from a JSON file instead of the API
  -p, --print       Print entries as a table and exit
  -h, --help        Show help
  -v, --version     Show version

Environment:
  HARVEST_ACCESS_TOKEN  Personal access token
  HARVEST_ACCOUNT_ID    Account id

Keybindings:
  1/2/3             Today / this week / month
  ←/→               Previous / next month
  any other key     Load entries
  ↑/↓               Move focus
  y                 Copy entry id
  ?                 Help
  q                 Quit / close window
  ctrl+c            Exit from any window`)
}
