package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	redis "github.com/redis/go-redis/v9"
)

const defaultSummaryHash = "produce_ledger:summary_totals"

// RedisSummaryCache keeps every cached total as a field of one Redis hash,
// so Clear is a single DEL and the TTL bounds staleness for the whole set.
type RedisSummaryCache struct {
	client *redis.Client
	hash   string
	ttl    time.Duration
}

// NewRedisClient opens a client; callers share it with the rate limiter.
func NewRedisClient(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, hash: defaultSummaryHash, ttl: ttl}
}

// WithHash returns a copy that stores entries under a different hash key.
func (c *RedisSummaryCache) WithHash(hash string) *RedisSummaryCache {
	clone := *c
	clone.hash = hash
	return &clone
}

var _ portsrepo.SummaryCache = (*RedisSummaryCache)(nil)

func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

func (c *RedisSummaryCache) GetTotals(ctx context.Context, key string) (*domain.SalesTotals, error) {
	val, err := c.client.HGet(ctx, c.hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis hget %s: %w", key, err)
	}

	var totals domain.SalesTotals
	if err := json.Unmarshal([]byte(val), &totals); err != nil {
		return nil, fmt.Errorf("decode cached totals %s: %w", key, err)
	}
	return &totals, nil
}

func (c *RedisSummaryCache) SetTotals(ctx context.Context, key string, totals domain.SalesTotals) error {
	payload, err := json.Marshal(totals)
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, c.hash, key, payload)
	if c.ttl > 0 {
		pipe.Expire(ctx, c.hash, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset %s: %w", key, err)
	}
	return nil
}

func (c *RedisSummaryCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, c.hash).Err()
}
