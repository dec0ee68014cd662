package seeder

import (
	"context"
	"log"

	"skilltrack/internal/database"
)

// Seeder populates one slice of starter data. Every Run must be idempotent:
// seeding an already-populated store is a no-op.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	logger  *log.Logger
	seeders []Seeder
}

func NewRunner(logger *log.Logger, seeders ...Seeder) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger, seeders: seeders}
}

func (r *Runner) Run(ctx context.Context, db database.DB) error {
	for _, s := range r.seeders {
		r.logger.Printf("[Seeder] running %s", s.Name())
		if err := s.Run(ctx, db); err != nil {
			return err
		}
	}
	return nil
}
