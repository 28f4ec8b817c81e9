package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordtracker"
	"github.com/fwojciec/wordtracker/fs"
	wtslog "github.com/fwojciec/wordtracker/slog"
	"github.com/fwojciec/wordtracker/sqlite"
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
	// Directory holding the repository when --repo is not given.
	// Set before calling Run().
	RepoDir string

	// SQLite database, opened when the sqlite store is selected.
	DB *sqlite.DB

	// Services for end-to-end testing. Left nil, they are built from flags.
	Repository   wordtracker.Repository
	Sources      wordtracker.SourceReader
	ReportWriter wordtracker.ReportWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		RepoDir: defaultRepoDir(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordtracker"),
		kong.Description("Track the files and lines every word of a text appears on."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no files specified. Run 'wordtracker --help' to see usage")
	}

	if slices.ContainsFunc(args, isHelp) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(NormalizeArgs(args))
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	repo := m.Repository
	if repo == nil {
		path := cli.Repo
		if path == "" {
			path = filepath.Join(m.RepoDir, repoFilename(cli.Store))
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create repository directory: %w", err)
		}

		switch cli.Store {
		case StoreSQLite:
			m.DB = sqlite.NewDB(path)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set WORDTRACKER_REPO to use a different repository path\n")
				return fmt.Errorf("failed to open repository at %q: %w", path, err)
			}
			defer m.Close()
			history := sqlite.NewRepository(m.DB)
			deps.History = history
			repo = history
		default:
			repo = fs.NewRepository(path)
		}
	}
	deps.Repository = wtslog.NewLoggingRepository(repo, deps.Logger)

	if kongCtx.Selected().Name == "track" {
		sources := m.Sources
		if sources == nil {
			sources = fs.NewSourceReader(cli.Track.Concurrency)
		}
		deps.Sources = wtslog.NewLoggingSourceReader(sources, deps.Logger)
		deps.Progress = wtslog.NewProgress(deps.Logger, progressInterval)
		deps.ReportWriter = m.ReportWriter
	}

	return kongCtx.Run(deps)
}

// progressInterval is the minimum time between two indexing progress logs.
const progressInterval = time.Second

// Store values for the --store flag.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

func repoFilename(store string) string {
	if store == StoreSQLite {
		return "repository.db"
	}
	return "repository.json"
}

func defaultRepoDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".wordtracker")
}

func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "--help" || arg == "-h"
}
