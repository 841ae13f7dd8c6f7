package session

import (
	"context"
	"time"
)

// Store 登录令牌到用户 ID 的登记表
// 令牌本身不可校验，这里只记录签发过的令牌
type Store interface {
	Save(ctx context.Context, token string, userID uint) error
	// Lookup 令牌不存在或已过期时 ok 为 false
	Lookup(ctx context.Context, token string) (userID uint, ok bool, err error)
	Delete(ctx context.Context, token string) error
}

const DefaultTTL = 24 * time.Hour

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
