// Package readthrough 基于 Redis 的 JSON 读穿缓存。
package readthrough

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/pkg/logger"
)

// Cache 命中时直接反序列化，未命中调用 loader 并回写；Redis 故障时降级为直接加载。
type Cache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration

	hits  atomic.Int64
	loads atomic.Int64
}

func New(rdb *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(k string) string { return c.prefix + ":" + k }

// Fetch 读取 key，未命中时用 load 填充 out
func Fetch[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
		switch {
		case err == nil:
			if uErr := json.Unmarshal(data, &out); uErr == nil {
				c.hits.Add(1)
				return out, nil
			}
		case !errors.Is(err, redis.Nil):
			logger.Warn("cache get failed", zap.String("key", c.key(key)), zap.Error(err))
		}
	}

	c.loads.Add(1)
	out, err := load(ctx)
	if err != nil {
		return out, err
	}
	if c.rdb != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := c.rdb.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
				logger.Warn("cache set failed", zap.String("key", c.key(key)), zap.Error(err))
			}
		}
	}
	return out, nil
}

// Invalidate 删除前缀下的全部 key
func (c *Cache) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Counters 命中与回源次数
type Counters struct {
	Hits  int64 `json:"hits"`
	Loads int64 `json:"loads"`
}

func (c *Cache) Counters() Counters {
	return Counters{Hits: c.hits.Load(), Loads: c.loads.Load()}
}
