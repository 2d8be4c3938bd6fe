// Package seeders populates the document store with demo data for
// local development.
package seeders

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// Seeder seeds one collection.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db *database.Mongo) error
}

var registry = []Seeder{
	&ProductSeeder{},
}

// Run executes every registered seeder in order.
func Run(ctx context.Context, db *database.Mongo) error {
	for _, s := range registry {
		logger.Info("seeding", "seeder", s.Name())
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeders: %s: %w", s.Name(), err)
		}
	}
	return nil
}
