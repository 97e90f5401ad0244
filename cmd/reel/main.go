package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source"
	"github.com/mmcdole/reel/internal/service"
	"github.com/mmcdole/reel/internal/session"
	"github.com/mmcdole/reel/internal/store"
	"github.com/mmcdole/reel/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// options holds the parsed command line
type options struct {
	configDir string
	query     string
	page      int
	favorites bool

	clearHistory bool
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configDir, "config", "", "directory containing config.yaml")
	flag.StringVar(&opts.query, "q", "", "search for `title` and print the results")
	flag.IntVar(&opts.page, "page", 1, "results page to print with -q")
	flag.BoolVar(&opts.favorites, "favorites", false, "print stored favorites")
	flag.BoolVar(&opts.clearHistory, "clear-history", false, "forget stored search queries")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(opts.configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closeLog, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closeLog = adapter.NullLogger(), func() error { return nil }
	}
	defer closeLog()
	logger = adapter.WithSession(logger)
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	prefs := openPrefs(cfg.Store.Path, logger)
	defer prefs.Close()

	catalog, err := source.NewCatalog(&cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Create services
	favoritesSvc := service.NewFavoritesService(prefs, logger)
	historySvc := service.NewHistoryService(prefs, cfg.UI.HistorySize, logger)

	machine := session.NewMachine(catalog, favoritesSvc.Load(), favoritesSvc, session.MessagesFor(cfg.UI.Locale), logger)

	switch {
	case opts.clearHistory:
		historySvc.Clear()
		fmt.Println("Search history cleared.")
		return nil
	case opts.favorites:
		printFavorites(os.Stdout, machine.State().Favorites)
		return nil
	case opts.query != "":
		return runPrint(context.Background(), os.Stdout, machine, historySvc, opts)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive mode needs a terminal; use -q <title> to print results")
	}

	// Create TUI model
	opener := adapter.NewOpener(cfg.UI.Opener, cfg.UI.OpenerArgs, logger)
	model := tui.NewModel(machine, historySvc).WithOpener(opener)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// openPrefs opens the local store at path. When the file is locked by another
// instance or unreadable, favorites and history live in memory for this run.
func openPrefs(path string, logger *slog.Logger) *store.PrefsStore {
	prefs, err := store.NewPrefsStore(path)
	if err == nil {
		return prefs
	}
	logger.Warn("local store unavailable, continuing without persistence", "path", path, "error", err)
	prefs, _ = store.NewPrefsStore("")
	return prefs
}

// runPrint performs one search (and page jump) and prints the outcome
func runPrint(ctx context.Context, w io.Writer, machine *session.Machine, history tui.QueryHistory, opts options) error {
	machine.SetQuery(opts.query)
	if !machine.Search(ctx) {
		return errors.New("search query is blank")
	}
	if history != nil {
		history.Record(opts.query)
	}

	st := machine.State()
	if st.Status.Error == "" && opts.page != st.Results.PageNumber {
		if !machine.CanGoToPage(opts.page) {
			return fmt.Errorf("page %d out of range (1-%d)", opts.page, st.Results.TotalPages())
		}
		machine.GoToPage(ctx, opts.page)
		st = machine.State()
	}

	if st.Status.Error != "" {
		return errors.New(st.Status.Error)
	}
	printResults(w, st)
	return nil
}
