package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"defense-management-system/config"
)

const keyPrefix = "session:token:"

type RedisStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore 连接 Redis 并执行 Ping 健康检查
func NewRedisStore(ctx context.Context, cfg config.Redis, ttl time.Duration) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}
	return &RedisStore{rdb: rdb, ttl: ttlOrDefault(ttl)}, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, userID uint) error {
	return s.rdb.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (uint, bool, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
