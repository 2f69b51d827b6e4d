package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	buddy "github.com/LukasGLars/construction-buddy"
	"github.com/LukasGLars/construction-buddy/excelize"
	"github.com/LukasGLars/construction-buddy/fs"
	"github.com/LukasGLars/construction-buddy/goquery"
	buddyhttp "github.com/LukasGLars/construction-buddy/http"
	"github.com/LukasGLars/construction-buddy/rod"
	buddyslog "github.com/LukasGLars/construction-buddy/slog"
	"github.com/LukasGLars/construction-buddy/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ItemService    buddy.ItemService
	CatalogService buddy.CatalogService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("buddy"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'buddy --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BUDDY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire core services into dependencies
	m.ItemService = buddyslog.NewLoggingItemService(sqlite.NewItemService(m.DB), logger)
	m.CatalogService = sqlite.NewCatalogService(m.DB)
	deps.DB = m.DB
	deps.Items = m.ItemService
	deps.Catalog = m.CatalogService

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		var fetcher buddy.Fetcher
		if cli.Scrape.Browser {
			fetcher, err = rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		} else {
			fetcher = buddyhttp.NewFetcher()
		}
		deps.Fetcher = buddyslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()

		deps.Extractor = buddyslog.NewLoggingPageTextExtractor(goquery.NewPageTextExtractor(), logger)
		deps.CSVWriter = fs.NewWriter(cli.Scrape.Out)
		if cli.Scrape.XLSX != "" {
			deps.XLSXWriter = excelize.NewWriter(cli.Scrape.XLSX)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("BUDDY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "buddy.db"
	}
	dir := filepath.Join(home, ".buddy")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "buddy.db")
}
