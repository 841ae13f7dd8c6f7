package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	userID  uint
	expires time.Time
}

// MemoryStore 进程内登记表，未配置 Redis 时使用
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttlOrDefault(ttl),
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *MemoryStore) Save(_ context.Context, token string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.entries[token] = entry{userID: userID, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return 0, false, nil
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, token)
		return 0, false, nil
	}
	return e.userID, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// sweep 清理过期令牌，调用方需持有锁
func (s *MemoryStore) sweep() {
	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
}
