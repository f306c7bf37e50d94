package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
)

// BookRepository 图书仓储实现（内存）
// 行为与MySQL实现保持一致：删除图书同时删除购物车明细，查询时填充Category
type BookRepository struct {
	mu         sync.RWMutex
	nextID     uint
	items      map[uint]book.Book
	categories *CategoryRepository
	carts      *CartRepository
}

var _ book.Repository = (*BookRepository)(nil)

// NewBookRepository 创建内存图书仓储，categories和carts可以为nil
func NewBookRepository(categories *CategoryRepository, carts *CartRepository) *BookRepository {
	return &BookRepository{
		items:      make(map[uint]book.Book),
		categories: categories,
		carts:      carts,
	}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now

	stored := *b
	stored.Category = nil
	r.items[b.ID] = stored
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.RLock()
	b, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return nil, book.ErrBookNotFound
	}
	return r.withCategory(b), nil
}

func (r *BookRepository) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	r.mu.RLock()
	found := make([]book.Book, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.items[id]; ok {
			found = append(found, b)
		}
	}
	r.mu.RUnlock()

	out := make([]*book.Book, len(found))
	for i, b := range found {
		out[i] = r.withCategory(b)
	}
	return out, nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	b.UpdatedAt = time.Now()
	stored := *b
	stored.Category = nil
	r.items[b.ID] = stored
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	if _, ok := r.items[id]; !ok {
		r.mu.Unlock()
		return book.ErrBookNotFound
	}
	delete(r.items, id)
	r.mu.Unlock()

	if r.carts != nil {
		r.carts.removeBook(id)
	}
	return nil
}

func (r *BookRepository) FindPage(ctx context.Context, q book.PageQuery) ([]*book.Book, int64, error) {
	// 与MySQL默认的utf8mb4_*_ci排序规则一致，匹配不区分大小写
	name := strings.ToLower(q.Name)

	r.mu.RLock()
	matched := make([]book.Book, 0)
	for _, b := range r.items {
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		if q.Publisher != "" && !strings.EqualFold(b.Publisher, q.Publisher) {
			continue
		}
		matched = append(matched, b)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))

	start := q.Offset()
	if start >= len(matched) {
		return []*book.Book{}, total, nil
	}
	end := start + q.Size
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]*book.Book, 0, end-start)
	for _, b := range matched[start:end] {
		out = append(out, r.withCategory(b))
	}
	return out, total, nil
}

func (r *BookRepository) FindAllPublishers(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, b := range r.items {
		if b.Publisher == "" {
			continue
		}
		if _, ok := seen[b.Publisher]; ok {
			continue
		}
		seen[b.Publisher] = struct{}{}
		out = append(out, b.Publisher)
	}
	sort.Strings(out)
	return out, nil
}

func (r *BookRepository) DetachCategory(ctx context.Context, categoryID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for id, b := range r.items {
		if b.CategoryID == categoryID {
			b.CategoryID = 0
			r.items[id] = b
			affected++
		}
	}
	return affected, nil
}

func (r *BookRepository) withCategory(b book.Book) *book.Book {
	b.Category = r.categories.lookup(b.CategoryID)
	return &b
}
