package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/store"
)

// initializeDatabase opens the store and checks that it answers within
// DBInitTimeout.
func initializeDatabase(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBInitTimeout)
	defer cancel()

	db, err := store.New(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Health(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database is not reachable: %w", err)
	}

	log.Printf("[Store] Database initialized (driver: %s)", cfg.DatabaseDriver)
	return db, nil
}
