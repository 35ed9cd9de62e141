package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/showdeck/internal/cli"
	"github.com/alexanderramin/showdeck/internal/db"
	"github.com/alexanderramin/showdeck/internal/logging"
	"github.com/alexanderramin/showdeck/internal/mirror"
	"github.com/alexanderramin/showdeck/internal/remote"
	"github.com/alexanderramin/showdeck/internal/schedule"
	"github.com/alexanderramin/showdeck/internal/store"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logging.Setup(os.Getenv("SHOWDECK_LOG_LEVEL"))

	// Determine DB path: env var or default ~/.showdeck/showdeck.db
	dbPath := os.Getenv("SHOWDECK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".showdeck", "showdeck.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()
	snapshots := store.NewSnapshotStore(database)

	// Remote sync is optional. A failed dial degrades to local-only mode.
	var docs remote.DocStore
	var mirrorer schedule.Mirrorer
	syncCfg := remote.LoadConfig()
	if syncCfg.Enabled {
		ws, err := remote.Dial(ctx, syncCfg)
		if err != nil {
			slog.Warn("remote sync unavailable, running local-only", "url", syncCfg.URL, "error", err)
		} else {
			defer ws.Close()
			docs = ws
			mirrorer = mirror.NewMirror(ws)
		}
	}

	app := &cli.App{
		Organizer: schedule.NewOrganizer(ctx, snapshots, mirrorer),
		Docs:      docs,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
