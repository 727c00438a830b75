package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lagerkoll/backend-go/internal/config"
	"github.com/lagerkoll/backend-go/internal/reorder"
)

const (
	reportKeyPrefix     = "reorder:report"
	reportScanBatchSize = 100
)

// ReportKey identifies one pipeline invocation by its input parameters.
// Identical parameters may reuse a prior result as long as the TTL makes the
// staleness acceptable.
type ReportKey struct {
	From         string
	To           string
	LeadTimeDays int
	SafetyStock  int
	OnlyShipped  bool
}

// ReportCache memoizes finished reorder reports. It is an optional layer:
// the noop implementation is used when caching is disabled.
type ReportCache interface {
	Get(ctx context.Context, key ReportKey) ([]reorder.Row, bool, error)
	Set(ctx context.Context, key ReportKey, rows []reorder.Row) error
	Invalidate(ctx context.Context, key ReportKey) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context, key ReportKey) ([]reorder.Row, bool, error) {
	payload, err := c.client.Get(ctx, buildReportKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var rows []reorder.Row
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false, fmt.Errorf("decode report cache: %w", err)
	}
	return rows, true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key ReportKey, rows []reorder.Row) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}
	if err := c.client.Set(ctx, buildReportKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) Invalidate(ctx context.Context, key ReportKey) error {
	return c.client.Del(ctx, buildReportKey(key)).Err()
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix, reportScanBatchSize)
}

func (n *noopReportCache) Get(ctx context.Context, key ReportKey) ([]reorder.Row, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) Set(ctx context.Context, key ReportKey, rows []reorder.Row) error {
	return nil
}

func (n *noopReportCache) Invalidate(ctx context.Context, key ReportKey) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildReportKey(key ReportKey) string {
	return fmt.Sprintf("%s:%s", reportKeyPrefix, reportKeyHash(key))
}

func reportKeyHash(key ReportKey) string {
	parts := []string{
		"from=" + strings.TrimSpace(key.From),
		"to=" + strings.TrimSpace(key.To),
		fmt.Sprintf("lead_time=%d", key.LeadTimeDays),
		fmt.Sprintf("safety_stock=%d", key.SafetyStock),
		fmt.Sprintf("only_shipped=%t", key.OnlyShipped),
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
