package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/muhammadheryan/rental-commerce/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values. Sessions
// are written by the external auth service; this side only reads them.
type Repository interface {
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	SetHold(ctx context.Context, holdID string, payload string, ttl time.Duration) error
	ClaimHold(ctx context.Context, holdID string) (string, error)
	GetStockSnapshot(ctx context.Context, variantID uint64) (string, error)
	SetStockSnapshot(ctx context.Context, variantID uint64, payload string, ttl time.Duration) error
	DeleteStockSnapshot(ctx context.Context, variantID uint64) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func holdKey(holdID string) string {
	return "hold:" + holdID
}

func snapshotKey(variantID uint64) string {
	return fmt.Sprintf("variant:snapshot:%d", variantID)
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// SetHold stores the pending hold record with time-to-live
func (r *redis) SetHold(ctx context.Context, holdID string, payload string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, holdKey(holdID), payload, ttl).Err()
}

// ClaimHold atomically reads and removes the hold record, so concurrent
// settlements (confirm, cancel, expiry) succeed exactly once. Returns an empty
// payload when the hold was already claimed or never existed.
func (r *redis) ClaimHold(ctx context.Context, holdID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.GetDel(ctx, holdKey(holdID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// GetStockSnapshot reads the cached stock snapshot JSON for a variant
func (r *redis) GetStockSnapshot(ctx context.Context, variantID uint64) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, snapshotKey(variantID)).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetStockSnapshot caches the stock snapshot JSON with time-to-live
func (r *redis) SetStockSnapshot(ctx context.Context, variantID uint64, payload string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, snapshotKey(variantID), payload, ttl).Err()
}

// DeleteStockSnapshot invalidates the cached snapshot after a stock mutation
func (r *redis) DeleteStockSnapshot(ctx context.Context, variantID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, snapshotKey(variantID)).Err()
}
