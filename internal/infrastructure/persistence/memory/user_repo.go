package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// UserRepository 用户仓储实现（内存）
type UserRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]user.User
}

var _ user.Repository = (*UserRepository)(nil)

// NewUserRepository 创建内存用户仓储
func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[uint]user.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Username == u.Username {
			return apperrors.ErrUsernameDuplicate
		}
	}

	r.nextID++
	u.ID = r.nextID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
		u.UpdatedAt = u.CreatedAt
	}
	r.items[u.ID] = *u
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
