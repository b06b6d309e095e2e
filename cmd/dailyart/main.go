package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/dailyart/internal/acquire"
	"github.com/mmcdole/dailyart/internal/adapter"
	"github.com/mmcdole/dailyart/internal/adapter/source"
	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/favorites"
	"github.com/mmcdole/dailyart/internal/preferences"
	"github.com/mmcdole/dailyart/internal/recommend"
	"github.com/mmcdole/dailyart/internal/session"
	"github.com/mmcdole/dailyart/internal/store"
	"github.com/mmcdole/dailyart/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                        \r"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type options struct {
	print      bool
	refresh    bool
	reset      bool
	initConfig bool
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&opts.print, "print", false, "print today's artwork and exit")
	flag.BoolVar(&opts.refresh, "refresh", false, "with -print, fetch a new artwork instead of today's")
	flag.BoolVar(&opts.reset, "reset", false, "delete all local data (today's artwork, favorites, preferences)")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write the effective configuration to the config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("dailyart %s\n", Version)
		return
	}

	// Without a terminal the TUI cannot run; fall back to plain output
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		opts.print = true
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting dailyart", "version", Version)

	if opts.initConfig {
		if err := adapter.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Println("Configuration written.")
		return nil
	}

	if opts.reset {
		if err := adapter.ClearData(cfg); err != nil {
			return err
		}
		logger.Info("cleared local data", "path", cfg.Storage.Path)
		fmt.Println("Local data cleared.")
		if !opts.print {
			return nil
		}
	}

	// Create collection client
	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create collection client: %w", err)
	}

	// Open local store (memory-only when no path is configured)
	st, err := store.NewSlotStore(cfg.Storage.Path, cfg.Source.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	// Create services
	acquireSvc := acquire.NewService(client, st, logger,
		acquire.WithSampleSize(cfg.Acquisition.SampleSize),
		acquire.WithMaxDraws(cfg.Acquisition.MaxDraws),
		acquire.WithPrefetchWindow(cfg.Acquisition.PrefetchWindow),
	)
	favoritesSvc := favorites.NewService(st, logger)
	prefsSvc := preferences.NewService(st, logger)
	sessionSvc := session.NewService(st, session.NewPool(), logger)

	if opts.print {
		return printArtwork(os.Stdout, acquireSvc, prefsSvc.Get(), opts.refresh)
	}

	model := tui.NewModel(tui.Services{
		Acquire:     acquireSvc,
		Recommend:   recommend.NewEngine(nil, cfg.Recommend.Limit, logger),
		Favorites:   favoritesSvc,
		Preferences: prefsSvc,
		Session:     sessionSvc,
		Opener:      adapter.NewLauncher(cfg.Viewer.Command, cfg.Viewer.Args, logger),
		Logger:      logger,
	})

	// Run the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// printArtwork resolves an artwork with a stderr spinner and prints it
func printArtwork(w io.Writer, svc *acquire.Service, prefs domain.Preferences, refresh bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	type result struct {
		art *domain.Artwork
		err error
	}
	resultCh := make(chan result, 1)

	go func() {
		var art *domain.Artwork
		var err error
		if refresh {
			art, err = svc.Refresh(ctx, prefs)
		} else {
			art, err = svc.DailyArtwork(ctx, prefs)
		}
		resultCh <- result{art, err}
	}()

	res := waitWithSpinner(resultCh, term.IsTerminal(int(os.Stderr.Fd())))
	if res.err != nil {
		return res.err
	}
	writeArtwork(w, *res.art)
	return nil
}

// waitWithSpinner animates a spinner on stderr until the result arrives
func waitWithSpinner[T any](ch <-chan T, animate bool) T {
	if !animate {
		return <-ch
	}

	frame := 0
	fmt.Fprintf(os.Stderr, "\r%s Finding today's artwork...", spinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-ch:
			fmt.Fprint(os.Stderr, clearSpinnerLine)
			return res
		case <-ticker.C:
			frame++
			fmt.Fprintf(os.Stderr, "\r%s Finding today's artwork...", spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func writeArtwork(w io.Writer, a domain.Artwork) {
	fmt.Fprintln(w, a.Title)
	fmt.Fprintln(w, a.Attribution())
	for _, f := range []struct{ label, value string }{
		{"Medium", a.Medium},
		{"Period", a.Period},
		{"Style", strings.ReplaceAll(a.Style, "|", ", ")},
		{"Department", a.Department},
		{"Image", a.DisplayImage()},
		{"Page", a.DetailURL},
	} {
		if f.value != "" {
			fmt.Fprintf(w, "%-11s %s\n", f.label+":", f.value)
		}
	}
}
