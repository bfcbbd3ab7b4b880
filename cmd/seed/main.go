package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	"portfolio/internal/logger"
	"portfolio/internal/repository"
	"portfolio/internal/repository/postgres"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	root := newRootCmd(&cmdDeps{
		Logger: log,
		OpenStore: func(ctx context.Context) (repository.DocumentStore, func(), error) {
			db, err := database.NewPostgres(ctx, cfg.Database, log)
			if err != nil {
				return nil, nil, err
			}
			if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
			return postgres.NewDocumentPostgres(db), func() { _ = db.Close() }, nil
		},
	})

	if err := root.Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
