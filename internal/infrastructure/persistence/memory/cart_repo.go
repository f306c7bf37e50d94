package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
)

// CartRepository 购物车仓储实现（内存）
type CartRepository struct {
	mu      sync.RWMutex
	nextID  uint
	carts   map[uint]cart.Cart
	details map[uint][]cart.Detail // cartID → 明细（按加入顺序）
}

var _ cart.Repository = (*CartRepository)(nil)

// NewCartRepository 创建内存购物车仓储
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts:   make(map[uint]cart.Cart),
		details: make(map[uint][]cart.Detail),
	}
}

func (r *CartRepository) Create(ctx context.Context, c *cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	stored := *c
	stored.Details = nil
	r.carts[c.ID] = stored
	return nil
}

func (r *CartRepository) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[id]
	if !ok {
		return nil, cart.ErrCartNotFound
	}

	details := r.details[id]
	c.Details = make([]*cart.Detail, len(details))
	for i := range details {
		d := details[i]
		c.Details[i] = &d
	}
	return &c, nil
}

func (r *CartRepository) List(ctx context.Context, page, size int) ([]*cart.Cart, int64, error) {
	r.mu.RLock()
	all := make([]cart.Cart, 0, len(r.carts))
	for _, c := range r.carts {
		all = append(all, c)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))

	start := page * size
	if start >= len(all) {
		return []*cart.Cart{}, total, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}

	out := make([]*cart.Cart, 0, end-start)
	for i := start; i < end; i++ {
		c := all[i]
		out = append(out, &c)
	}
	return out, total, nil
}

func (r *CartRepository) AddBook(ctx context.Context, cartID, bookID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cartID]; !ok {
		return cart.ErrCartNotFound
	}

	details := r.details[cartID]
	for i := range details {
		if details[i].BookID == bookID {
			details[i].Quantity++
			details[i].UpdatedAt = time.Now()
			return nil
		}
	}
	r.details[cartID] = append(details, *cart.NewDetail(cartID, bookID))
	return nil
}

func (r *CartRepository) DeleteDetails(ctx context.Context, cartID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.details, cartID)
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return cart.ErrCartNotFound
	}
	delete(r.carts, id)
	return nil
}

// removeBook 图书删除时清理所有购物车中的明细
func (r *CartRepository) removeBook(bookID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for cartID, details := range r.details {
		kept := details[:0]
		for _, d := range details {
			if d.BookID != bookID {
				kept = append(kept, d)
			}
		}
		r.details[cartID] = kept
	}
}
