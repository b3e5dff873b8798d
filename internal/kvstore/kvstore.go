// Package kvstore provides the durable backing store behind the application's
// keyed state: a minimal get/set contract over string values, with
// interchangeable drivers selected by configuration.
package kvstore

import (
	"context"
	"fmt"
	"log"

	"github.com/allersafe/backend/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the backing-store contract. Get reports absence via the second
// return value; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Open selects and initializes a Store from configuration. A nil Store with a
// nil error means the app runs session-only (driver "none" or empty); callers
// detect this once at startup, not per operation.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "", "none":
		return nil, nil
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.StorePath)
	case "redis":
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewRedis(client), nil
	case "db":
		db, err := openGorm(cfg)
		if err != nil {
			return nil, err
		}
		return NewDB(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openGorm(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch cfg.DBDriver {
	case "postgres":
		log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}
