package user

import (
	"context"
	"time"
)

// Repository 用户仓储接口
// 具体实现在infrastructure/persistence（mysql、memory）
type Repository interface {
	// Create 创建用户
	// 用户名已存在时返回errors.ErrUsernameDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername 根据用户名查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// SessionStore 登录会话与Token黑名单
// 实现：persistence/redis.SessionStore、persistence/memory.SessionStore
type SessionStore interface {
	SaveSession(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
