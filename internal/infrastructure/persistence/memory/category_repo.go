package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/category"
)

// CategoryRepository 分类仓储实现（内存）
type CategoryRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]category.Category
}

var _ category.Repository = (*CategoryRepository)(nil)

// NewCategoryRepository 创建内存分类仓储
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{items: make(map[uint]category.Category)}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Name == c.Name {
			return category.ErrNameDuplicate
		}
	}

	r.nextID++
	c.ID = r.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
		c.UpdatedAt = c.CreatedAt
	}
	r.items[c.ID] = *c
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*category.Category, 0, len(r.items))
	for _, c := range r.items {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

// lookup 供图书仓储填充Category
func (r *CategoryRepository) lookup(id uint) *category.Category {
	if r == nil || id == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil
	}
	return &c
}
