// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/fletepay/backend/internal/application/adapter"
)

// sequenceKeyPrefix namespaces the per-series counters in Redis.
const sequenceKeyPrefix = "fletepay:receipt-sequence:"

// redisReceiptSequence implements adapter.ReceiptSequence on a Redis counter.
// INCR is atomic, so concurrent issuers can never observe the same number and
// there are no gaps on the happy path.
type redisReceiptSequence struct {
	client *redis.Client
}

// NewRedisReceiptSequence creates a receipt sequence backed by Redis.
func NewRedisReceiptSequence(client *redis.Client) adapter.ReceiptSequence {
	return &redisReceiptSequence{
		client: client,
	}
}

// Next atomically advances and returns the counter for the series.
func (s *redisReceiptSequence) Next(ctx context.Context, series string) (int64, error) {
	return s.client.Incr(ctx, sequenceKeyPrefix+series).Result()
}
