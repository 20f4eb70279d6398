package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/juliakramer/wortschatz/internal/cli"
	"github.com/juliakramer/wortschatz/internal/config"
	"github.com/juliakramer/wortschatz/internal/content"
	"github.com/juliakramer/wortschatz/internal/db"
	"github.com/juliakramer/wortschatz/internal/progress"
	"github.com/juliakramer/wortschatz/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("WORTSCHATZ_CONFIG"))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))

	// Progress backend: plain JSON file or bbolt.
	var blob progress.BlobStore
	switch cfg.ProgressBackend {
	case config.BackendBolt:
		blob, err = progress.OpenBoltStore(cfg.ProgressPath)
		if err != nil {
			return fmt.Errorf("opening progress store: %w", err)
		}
	default:
		blob = progress.NewFileStore(cfg.ProgressPath)
	}
	defer blob.Close()

	store := progress.Open(blob, progress.WithLogger(logger))

	library, err := content.Load(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	database, err := db.OpenDB(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Progress: store,
		Library:  library,
		Rounds:   repository.NewSQLiteRoundRepo(database),
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:   logger,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
