package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookstore-manager/pkg/logger"
)

// fakeCache 记录调用次数的内存缓存
type fakeCache struct {
	books       map[uint]*book.Book
	publishers  []string
	invalidated []uint
	flushed     int
	getErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{books: make(map[uint]*book.Book)}
}

func (c *fakeCache) GetBook(_ context.Context, id uint) (*book.Book, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.books[id], nil
}

func (c *fakeCache) SetBook(_ context.Context, b *book.Book) error {
	c.books[b.ID] = b
	return nil
}

func (c *fakeCache) GetPublishers(context.Context) ([]string, error) {
	return c.publishers, c.getErr
}

func (c *fakeCache) SetPublishers(_ context.Context, p []string) error {
	c.publishers = p
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id uint) error {
	delete(c.books, id)
	c.publishers = nil
	c.invalidated = append(c.invalidated, id)
	return nil
}

func (c *fakeCache) Flush(context.Context) error {
	c.books = make(map[uint]*book.Book)
	c.publishers = nil
	c.flushed++
	return nil
}

type fixture struct {
	svc        book.Service
	repo       *memory.BookRepository
	categories *memory.CategoryRepository
	cache      *fakeCache
}

func setup(t *testing.T) *fixture {
	t.Helper()
	categories := memory.NewCategoryRepository()
	repo := memory.NewBookRepository(categories, memory.NewCartRepository())
	cache := newFakeCache()
	return &fixture{
		svc:        book.NewService(repo, category.NewService(categories), cache, logger.Nop()),
		repo:       repo,
		categories: categories,
		cache:      cache,
	}
}

func (f *fixture) seedCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c := category.NewCategory(name)
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c
}

func TestService_GetBookByID_CacheAside(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	b := book.NewBook("Go语言圣经", 0, "", "a.png", book.StatusOnSale, "机械工业出版社", 3)
	require.NoError(t, f.repo.Create(ctx, b))

	t.Run("未命中时查库并回填", func(t *testing.T) {
		got, err := f.svc.GetBookByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go语言圣经", got.Name)
		assert.Contains(t, f.cache.books, b.ID)
	})

	t.Run("命中时直接返回缓存", func(t *testing.T) {
		f.cache.books[b.ID] = &book.Book{ID: b.ID, Name: "缓存中的书名"}
		got, err := f.svc.GetBookByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "缓存中的书名", got.Name)
	})

	t.Run("缓存故障降级查库", func(t *testing.T) {
		f.cache.getErr = errors.New("connection refused")
		defer func() { f.cache.getErr = nil }()

		got, err := f.svc.GetBookByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go语言圣经", got.Name)
	})

	t.Run("不存在返回404错误", func(t *testing.T) {
		_, err := f.svc.GetBookByID(ctx, 999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestService_ListPublishers(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for _, p := range []string{"中信出版社", "人民邮电出版社", "中信出版社"} {
		require.NoError(t, f.svc.SaveBook(ctx, book.NewBook("x", 0, "", "i", "", p, 1)))
	}

	publishers, err := f.svc.ListPublishers(ctx)
	require.NoError(t, err)
	assert.Len(t, publishers, 2)
	assert.Equal(t, publishers, f.cache.publishers)
}

func TestService_ListBooks(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	t.Run("负数页码", func(t *testing.T) {
		_, _, err := f.svc.ListBooks(ctx, book.PageQuery{Page: -1})
		assert.ErrorIs(t, err, book.ErrInvalidPage)
	})

	t.Run("默认每页12条", func(t *testing.T) {
		for i := 0; i < 13; i++ {
			require.NoError(t, f.repo.Create(ctx, book.NewBook("书", 0, "", "i", "", "", 1)))
		}
		books, total, err := f.svc.ListBooks(ctx, book.PageQuery{Name: "  书 "})
		require.NoError(t, err)
		assert.Equal(t, int64(13), total)
		assert.Len(t, books, book.PageSize)
	})
}

func TestService_SaveBook(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	t.Run("未分类可以保存", func(t *testing.T) {
		b := book.NewBook("未分类", 0, "", "i", "", "", -5)
		require.NoError(t, f.svc.SaveBook(ctx, b))
		assert.NotZero(t, b.ID)
		assert.Contains(t, f.cache.invalidated, b.ID)
	})

	t.Run("分类不存在", func(t *testing.T) {
		err := f.svc.SaveBook(ctx, book.NewBook("x", 42, "", "i", "", "", 1))
		assert.ErrorIs(t, err, book.ErrCategoryNotExist)
	})
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.seedCategory(t, "计算机")

	b := book.NewBook("原书名", c.ID, "", "old.png", "", "", 5)
	require.NoError(t, f.repo.Create(ctx, b))

	valid := book.UpdateParams{Name: "新书名", CategoryID: c.ID, Quantity: 8, Publisher: "新出版社"}

	cases := []struct {
		name   string
		id     uint
		params book.UpdateParams
		want   error
	}{
		{"数量为负优先于其他错误", 999, book.UpdateParams{Quantity: -1}, book.ErrQuantityNegative},
		{"名称为空", 999, book.UpdateParams{Name: " ", CategoryID: c.ID}, book.ErrNameRequired},
		{"未选择分类", 999, book.UpdateParams{Name: "x"}, book.ErrCategoryRequired},
		{"校验通过后图书不存在", 999, valid, book.ErrBookNotFound},
		{"分类不存在", b.ID, book.UpdateParams{Name: "x", CategoryID: 77}, book.ErrCategoryNotExist},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.UpdateBook(ctx, tc.id, tc.params)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("校验失败不修改数据", func(t *testing.T) {
		got, err := f.repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Quantity)
		assert.Equal(t, "原书名", got.Name)
	})

	t.Run("更新成功保留原封面", func(t *testing.T) {
		got, err := f.svc.UpdateBook(ctx, b.ID, valid)
		require.NoError(t, err)
		assert.Equal(t, "新书名", got.Name)
		assert.Equal(t, 8, got.Quantity)
		assert.Equal(t, "old.png", got.Image)
		require.NotNil(t, got.Category)
		assert.Equal(t, "计算机", got.Category.Name)
		assert.Contains(t, f.cache.invalidated, b.ID)
	})
}

func TestService_DeleteBook(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	b := book.NewBook("待删除", 0, "", "cover.png", "", "", 1)
	require.NoError(t, f.repo.Create(ctx, b))

	deleted, err := f.svc.DeleteBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cover.png", deleted.Image)

	_, err = f.svc.DeleteBook(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestService_DetachCategory(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.seedCategory(t, "文学")

	t.Run("没有引用", func(t *testing.T) {
		n, err := f.svc.DetachCategory(ctx, c.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("解除关联但不清空缓存", func(t *testing.T) {
		require.NoError(t, f.repo.Create(ctx, book.NewBook("x", c.ID, "", "i", "", "", 1)))
		n, err := f.svc.DetachCategory(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Zero(t, f.cache.flushed)
	})

	t.Run("FlushCache", func(t *testing.T) {
		f.svc.FlushCache(ctx)
		assert.Equal(t, 1, f.cache.flushed)
	})
}

func TestService_FindBooksByIDs_Empty(t *testing.T) {
	f := setup(t)
	books, err := f.svc.FindBooksByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestService_NilCache(t *testing.T) {
	ctx := context.Background()
	categories := memory.NewCategoryRepository()
	repo := memory.NewBookRepository(categories, nil)
	svc := book.NewService(repo, category.NewService(categories), nil, logger.Nop())

	b := book.NewBook("x", 0, "", "i", "", "p", 1)
	require.NoError(t, svc.SaveBook(ctx, b))

	got, err := svc.GetBookByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}
