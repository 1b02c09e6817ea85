// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/lucky-picker/cliparse"
	"github.com/danielhkuo/lucky-picker/db"
)

// Store is a flat key-value store holding serialized slots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns found=false, err=nil when the key has never been set.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Open builds the Store selected by cfg.DatabaseType. The returned func
// releases the underlying connection.
func Open(ctx context.Context, cfg cliparse.Config) (Store, func() error, error) {
	switch cfg.DatabaseType {
	case cliparse.TypeMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case cliparse.TypeRedis:
		opts, err := redis.ParseURL(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		slog.Info("Redis connection established", "addr", opts.Addr)
		return NewRedisStore(rdb, DefaultRedisPrefix), rdb.Close, nil

	default:
		conn, err := db.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return NewSQLStore(conn), conn.Close, nil
	}
}
