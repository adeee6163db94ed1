package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

const (
	accuracyKeyPrefix = "dispatcher:accuracy:"
	baseAccuracyTTL   = 30 * time.Minute
	accuracyTTLJitter = 10 * time.Minute // TTL range: 30-40 min (anti-stampede)
)

// RedisAccuracyCache caches per-dispatcher accuracy reports as JSON blobs.
// A review submission invalidates the reviewed dispatcher's entry.
type RedisAccuracyCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisAccuracyCache(client *redis.Client, logger logger.Interface) *RedisAccuracyCache {
	return &RedisAccuracyCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisAccuracyCache) key(dispatcherID uint) string {
	return fmt.Sprintf("%s%d", accuracyKeyPrefix, dispatcherID)
}

// GetReport returns the cached report, or (nil, nil) on a cache miss.
func (c *RedisAccuracyCache) GetReport(ctx context.Context, dispatcherID uint) (*dto.AccuracyReport, error) {
	data, err := c.client.Get(ctx, c.key(dispatcherID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get accuracy report from cache: %w", err)
	}

	var report dto.AccuracyReport
	if err := json.Unmarshal(data, &report); err != nil {
		// Corrupt entry, treat as miss and let the caller recompute.
		c.logger.Warnw("dropping corrupt accuracy cache entry", "dispatcher_id", dispatcherID, "error", err)
		_ = c.client.Del(ctx, c.key(dispatcherID)).Err()
		return nil, nil
	}

	return &report, nil
}

func (c *RedisAccuracyCache) SetReport(ctx context.Context, dispatcherID uint, report *dto.AccuracyReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal accuracy report: %w", err)
	}

	if err := c.client.Set(ctx, c.key(dispatcherID), data, accuracyTTLWithJitter()).Err(); err != nil {
		return fmt.Errorf("failed to set accuracy report in cache: %w", err)
	}

	c.logger.Debugw("accuracy report cached",
		"dispatcher_id", dispatcherID,
		"sample_size", report.SampleSize,
	)

	return nil
}

func (c *RedisAccuracyCache) Invalidate(ctx context.Context, dispatcherID uint) error {
	if err := c.client.Del(ctx, c.key(dispatcherID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate accuracy cache: %w", err)
	}

	c.logger.Debugw("accuracy cache invalidated", "dispatcher_id", dispatcherID)

	return nil
}

func accuracyTTLWithJitter() time.Duration {
	return baseAccuracyTTL + rand.N(accuracyTTLJitter)
}
