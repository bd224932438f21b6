package kvstore

import (
	"context"
	"fmt"

	"github.com/noah-isme/alpstech-academy-api/pkg/config"
)

// Open builds the backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return NewMemory(), nil
	case config.StorageFile, "":
		return NewFileStore(cfg.Storage.Dir)
	case config.StorageRedis:
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return NewRedisStore(client, cfg.Storage.KeyPrefix), nil
	case config.StoragePostgres:
		db, err := NewPostgresDB(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store, err := NewPostgresStore(ctx, db, cfg.Database.Table)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
