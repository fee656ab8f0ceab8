package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/nyangbti/catquiz/internal/achieve"
	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/config"
	"github.com/nyangbti/catquiz/internal/database"
	"github.com/nyangbti/catquiz/internal/kvstore"
	"github.com/nyangbti/catquiz/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Static data is validated once; a malformed catalog is a build
	// defect and must not surface during per-request scoring.
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"breeds", len(catalog.Breeds()),
		"questions", len(catalog.Questions()),
	)

	// --- SQLite (share links, admin sessions) ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	docs, err := server.NewDocStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing doc store: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Badger (profiles, achievements, history) ---
	kv, err := kvstore.Open(cfg.KVDir)
	if err != nil {
		return fmt.Errorf("opening key-value store: %w", err)
	}
	defer kv.Close()
	logger.Info("opened key-value store", "dir", cfg.KVDir)

	profiles := server.NewProfileStore(kv, logger)
	achievements := achieve.NewStore(kv, logger)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, docs, profiles, achievements,
		cfg.AdminPasswordHash, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
