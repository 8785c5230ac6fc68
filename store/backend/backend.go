// Package backend opens the store.Store selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/armory-api/config"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/junaidrashid-git/armory-api/store/gormstore"
	"github.com/junaidrashid-git/armory-api/store/mongostore"
)

// Open connects to the backend named by cfg.StoreDriver. It does not migrate.
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		st, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return st, nil
	case config.DriverPostgres, config.DriverMySQL, config.DriverSQLite:
		st, err := gormstore.Open(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
