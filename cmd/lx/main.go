// Package main is the entry point for the lx editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lxedit/lx/internal/app"
	"github.com/lxedit/lx/internal/config"
	"github.com/lxedit/lx/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// flagSettings maps command-line flags to config setting paths. Flags
// override the config file and the environment.
var flagSettings = map[string]string{
	"keymap":    "input.keymap",
	"k":         "input.keymap",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func run() int {
	var (
		configPath  string
		showVersion bool
		showHelp    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file (.toml, .ini)")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.String("keymap", "", "Path to keymap file (.toml, .yaml, .json)")
	flag.String("k", "", "Path to keymap file (shorthand)")
	flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.String("log-file", "", "Log file path")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lx - modal terminal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lx [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  LX_<SECTION>_<NAME> overrides a setting, e.g. LX_LOG_LEVEL=debug\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		return 0
	}
	if showVersion {
		fmt.Printf("lx %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logFile, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Output: logFile,
		Prefix: "lx",
	})
	app.SetLogger(logger)
	logger.Info("lx %s (%s)", version, commit)

	application, err := app.New(app.Options{Config: &cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers defaults, the config file, LX_* variables and flags.
// An explicit -config path must exist; the default path may be absent.
func loadConfig(path string) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(config.DefaultPath())
	}
	if err != nil {
		return config.Config{}, err
	}

	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		setting, ok := flagSettings[f.Name]
		if !ok || flagErr != nil {
			return
		}
		if err := cfg.Set(setting, f.Value.String()); err != nil {
			flagErr = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	if flagErr != nil {
		return config.Config{}, flagErr
	}

	return cfg, cfg.Validate()
}
