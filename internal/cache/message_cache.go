package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "chirper/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyList          = "message:list"
	keyAccountPrefix = "message:account:"
)

// MessageCache caches the full message list and per-account lists in Redis.
type MessageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewMessageCache returns a new MessageCache.
func NewMessageCache(rdb *redis.Client, ttl time.Duration) *MessageCache {
	return &MessageCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached full list or nil if miss.
func (c *MessageCache) GetList(ctx context.Context) ([]dom.Message, error) {
	return c.get(ctx, keyList)
}

// SetList stores the full list in cache.
func (c *MessageCache) SetList(ctx context.Context, list []dom.Message) error {
	return c.set(ctx, keyList, list)
}

// GetAccountList returns the cached list for one account, or nil if miss.
func (c *MessageCache) GetAccountList(ctx context.Context, accountID int64) ([]dom.Message, error) {
	return c.get(ctx, accountKey(accountID))
}

// SetAccountList stores the per-account list in cache.
func (c *MessageCache) SetAccountList(ctx context.Context, accountID int64, list []dom.Message) error {
	return c.set(ctx, accountKey(accountID), list)
}

// InvalidateAll removes the full list and every per-account key
// (cache invalidation on write).
func (c *MessageCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyList).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyAccountPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *MessageCache) get(ctx context.Context, key string) ([]dom.Message, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Message
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *MessageCache) set(ctx context.Context, key string, list []dom.Message) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func accountKey(accountID int64) string {
	return keyAccountPrefix + strconv.FormatInt(accountID, 10)
}
