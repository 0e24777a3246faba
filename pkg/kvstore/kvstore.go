// Package kvstore provides the durable key/value store used for local order backups.
// Every backend stores opaque text values under flat string keys.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/db"
	"github.com/naturesnacks/snackstore/pkg/redis"
)

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("kvstore: key not found")
	// ErrQuotaExceeded is returned by Set when a bounded backend is full.
	ErrQuotaExceeded = errors.New("kvstore: quota exceeded")
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}

// Open selects the backend named by cfg.Driver. The redis and sql backends require their client.
func Open(cfg config.BackupConfig, redisClient *redis.Client, dbClient *db.Client) (Store, error) {
	switch cfg.Driver {
	case "", config.BackupDriverMemory:
		return NewMemory(cfg.MemoryQuotaBytes), nil
	case config.BackupDriverRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis backup store requires a redis client")
		}
		return NewRedis(redisClient), nil
	case config.BackupDriverSQL:
		if dbClient == nil {
			return nil, fmt.Errorf("sql backup store requires a database client")
		}
		return NewSQL(dbClient), nil
	default:
		return nil, fmt.Errorf("unsupported backup driver %q", cfg.Driver)
	}
}
