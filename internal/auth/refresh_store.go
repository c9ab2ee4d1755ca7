package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshStore 每个账号只保留最新的 refresh token
type RefreshStore struct {
	rdb *redis.Client
}

func NewRefreshStore(rdb *redis.Client) *RefreshStore { return &RefreshStore{rdb: rdb} }

func refreshKey(accountID int64) string { return "refresh:" + strconv.FormatInt(accountID, 10) }

func (s *RefreshStore) Save(ctx context.Context, accountID int64, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshKey(accountID), token, ttl).Err()
}

// Get 不存在返回空串
func (s *RefreshStore) Get(ctx context.Context, accountID int64) (string, error) {
	v, err := s.rdb.Get(ctx, refreshKey(accountID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (s *RefreshStore) Delete(ctx context.Context, accountID int64) error {
	return s.rdb.Del(ctx, refreshKey(accountID)).Err()
}
