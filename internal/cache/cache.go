package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache is a small JSON read-through cache for report projections. It
// also acts as the ledger's invalidator: any committed movement drops
// the cached summaries.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}

		return false, fmt.Errorf("reading cache key %q: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decoding cache key %q: %w", key, err)
	}

	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encoding cache key %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing cache key %q: %w", key, err)
	}

	return nil
}

// ItemChanged drops every cached report projection. Summaries aggregate
// across items, so a per-item delete would not be any cheaper.
func (c *Cache) ItemChanged(ctx context.Context, _ uuid.UUID) error {
	if err := c.client.Del(ctx, "report:weekly").Err(); err != nil {
		return fmt.Errorf("invalidating report cache: %w", err)
	}

	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
