package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/carson-networks/card-history-server/internal/config"
)

type Storage struct {
	Selection ISelectionStore

	closers []func() error
}

// NewStorage opens the selection store backend named in env.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.SelectionStore {
	case config.SelectionStorePostgres:
		db, err := sql.Open("postgres", env.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		return &Storage{
			Selection: NewPostgresSelectionStore(db),
			closers:   []func() error{db.Close},
		}, nil

	case config.SelectionStoreRedis:
		client, err := newRedis(env.RedisURL)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Selection: NewRedisSelectionStore(client),
			closers:   []func() error{client.Close},
		}, nil

	default:
		return &Storage{Selection: NewMemorySelectionStore()}, nil
	}
}

func (s *Storage) Close() error {
	var firstErr error
	for _, closer := range s.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage: parse redis url: %w", err)
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage: ping redis: %w", err)
	}
	return client, nil
}
