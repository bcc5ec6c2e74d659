package cmd

import (
	"context"
	"fmt"

	"object-gateway/core/config"
	"object-gateway/core/database"
	"object-gateway/core/journal"
	"object-gateway/core/logger"
	"object-gateway/core/storage"
	"object-gateway/feature/objects"

	"go.uber.org/zap"
)

// deps bundles the dependencies shared by the server and the CLI commands.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	journal journal.Recorder
	repo    *objects.Repository
}

// bootstrap loads configuration and wires storage, journal and repository.
func bootstrap(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rec := openJournal(ctx, cfg.Database, logg)
	repo := objects.NewRepository(client, storage.NewWaiter(cfg.Storage), rec, logg)

	return &deps{
		cfg:     cfg,
		logger:  logg,
		client:  client,
		journal: rec,
		repo:    repo,
	}, nil
}

// openJournal connects the optional journal database. Any failure falls back to a no-op journal.
func openJournal(ctx context.Context, cfg database.Config, logg *zap.Logger) journal.Recorder {
	if !cfg.Enabled {
		return journal.Nop{}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return journal.Nop{}
	}

	j := journal.New(db)
	if err := j.Migrate(ctx); err != nil {
		logg.Warn("Journal migration failed", zap.Error(err))
		return journal.Nop{}
	}

	logg.Info("Connected to journal database", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return j
}
