package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"flickdash/internal/catalog"
	"flickdash/internal/config"
	"flickdash/internal/log"
	"flickdash/internal/search"
	"flickdash/internal/store"
	"flickdash/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var csvPath string
	var clearCache bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&csvPath, "csv", "", "catalog CSV file (overrides config)")
	flag.BoolVar(&clearCache, "clear-cache", false, "remove cached snapshots and session state")
	flag.Parse()

	if showVersion {
		fmt.Printf("flickdash %s\n", Version)
		return
	}

	if clearCache {
		if err := config.ClearCache(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cache cleared.")
		return
	}

	if err := run(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	// A -csv override becomes the configured default for future runs
	if csvPath != "" && csvPath != cfg.Catalog.Path {
		cfg.Catalog.Path = csvPath
		if err := config.SaveConfig(cfg); err != nil {
			logger.Warn("failed to persist catalog path", "error", err)
		}
	}

	logger.Info("starting flickdash", "version", Version, "catalog", cfg.Catalog.Path)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("flickdash requires an interactive terminal")
	}

	// Fail fast on a missing catalog before entering the alt screen
	if _, err := catalog.Stat(cfg.Catalog.Path); err != nil {
		return fmt.Errorf("catalog file: %w", err)
	}

	// Open the snapshot/session store when caching is enabled
	var st *store.Store
	if cfg.Catalog.Cache {
		st, err = store.Open(config.CachePath())
		if err != nil {
			// Run without persistence rather than refusing to start
			logger.Warn("failed to open cache store", "error", err)
			st = nil
		} else {
			defer st.Close()
		}
	}

	// Create services
	catalogSvc := catalog.NewService(cfg.Catalog.Path, st, logger)
	searchSvc := search.NewService(logger)

	// Create TUI model
	model := tui.NewModel(cfg, catalogSvc, searchSvc, st, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
