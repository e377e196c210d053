package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/larriantoniy/ig_user_client/internal/ports"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each account's cookie list as a JSON array under prefix+account.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisStore: ttl <= 0 stores without expiry.
func NewRedisStore(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

var _ ports.SessionStore = (*RedisStore)(nil)

func (s *RedisStore) key(account string) string {
	return s.prefix + account
}

func (s *RedisStore) Save(ctx context.Context, account string, cookies []string) error {
	if len(cookies) == 0 {
		return s.Delete(ctx, account)
	}
	data, err := json.Marshal(cookies)
	if err != nil {
		return fmt.Errorf("marshal cookies: %w", err)
	}
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.rdb.Set(ctx, s.key(account), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", account, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, account string) ([]string, error) {
	data, err := s.rdb.Get(ctx, s.key(account)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", account, err)
	}
	var cookies []string
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("unmarshal cookies %s: %w", account, err)
	}
	if len(cookies) == 0 {
		return nil, ports.ErrSessionNotFound
	}
	return cookies, nil
}

func (s *RedisStore) Delete(ctx context.Context, account string) error {
	if err := s.rdb.Del(ctx, s.key(account)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", account, err)
	}
	return nil
}
