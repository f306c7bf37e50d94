package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/user"
)

// SessionStore 会话存储（内存），未启用Redis时使用
// 过期在读取时惰性判断
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[uint]time.Time
	blacklist map[string]time.Time
	now       func() time.Time
}

var _ user.SessionStore = (*SessionStore)(nil)

// NewSessionStore 创建内存会话存储
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions:  make(map[uint]time.Time),
		blacklist: make(map[string]time.Time),
		now:       time.Now,
	}
}

func (s *SessionStore) SaveSession(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = s.now().Add(ttl)
	return nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}

func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[token] = s.now().Add(ttl)
	return nil
}

func (s *SessionStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expireAt, ok := s.blacklist[token]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expireAt) {
		delete(s.blacklist, token)
		return false, nil
	}
	return true, nil
}

// HasSession 会话是否存在且未过期
func (s *SessionStore) HasSession(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expireAt, ok := s.sessions[userID]
	return ok && s.now().Before(expireAt)
}
