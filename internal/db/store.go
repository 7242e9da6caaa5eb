package db

import (
	"context"
	"fmt"

	"github.com/atinyakov/FleetKeeper/internal/config"
	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/redis/go-redis/v9"
)

// OpenStore opens the collection store selected by driver. The returned
// close function releases the underlying connection and is never nil.
func OpenStore(ctx context.Context, driver, dsn, redisPrefix string) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch driver {
	case config.StoreMemory:
		return kv.NewMemoryStore(), noop, nil

	case config.StoreFile:
		s, err := kv.NewFileStore(dsn)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case config.StoreSQLite:
		conn, err := InitSQLite(dsn)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewSQLiteStore(conn), conn.Close, nil

	case config.StorePostgres:
		conn, err := InitPostgres(dsn)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewPostgresStore(conn), conn.Close, nil

	case config.StoreRedis:
		opt, err := redis.ParseURL(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return kv.NewRedisStore(client, redisPrefix), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", driver)
}
