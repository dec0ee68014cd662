package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"skilltrack/internal/config"
	"skilltrack/internal/database"
	"skilltrack/internal/database/migration"
	dbpostgres "skilltrack/internal/database/postgres"
	"skilltrack/internal/database/seeder"
	"skilltrack/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

// NewContainer connects the backing services and brings the schema up to
// date. Migrations run before anything else touches the store.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	migrationsDir := cfg.Database.MigrationsDir
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	runner := migration.Runner{Dir: migrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if cfg.Seed.Enabled {
		seedRunner := seeder.NewRunner(logger, seeder.CatalogSeeder{CatalogPath: cfg.Seed.CatalogPath})
		if err := seedRunner.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
