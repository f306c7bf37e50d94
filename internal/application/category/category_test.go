package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcategory "github.com/xiebiao/bookstore-manager/internal/application/category"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookstore-manager/pkg/logger"
)

// orderTrace 记录事务提交与缓存清理的先后顺序
type orderTrace struct {
	events []string
}

type tracingTx struct {
	trace *orderTrace
	inner *memory.TxManager
}

func (t *tracingTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := t.inner.Transaction(ctx, fn); err != nil {
		return err
	}
	t.trace.events = append(t.trace.events, "commit")
	return nil
}

// flushCache 只关心Flush，其余方法表现为缓存未命中
type flushCache struct {
	trace *orderTrace
}

func (c *flushCache) GetBook(context.Context, uint) (*book.Book, error) { return nil, nil }
func (c *flushCache) SetBook(context.Context, *book.Book) error         { return nil }
func (c *flushCache) GetPublishers(context.Context) ([]string, error)   { return nil, nil }
func (c *flushCache) SetPublishers(context.Context, []string) error     { return nil }
func (c *flushCache) Invalidate(context.Context, uint) error            { return nil }
func (c *flushCache) Flush(context.Context) error {
	c.trace.events = append(c.trace.events, "flush")
	return nil
}

func TestCategoryUseCases(t *testing.T) {
	ctx := context.Background()
	categoryRepo := memory.NewCategoryRepository()
	bookRepo := memory.NewBookRepository(categoryRepo, nil)
	categories := category.NewService(categoryRepo)
	books := book.NewService(bookRepo, categories, nil, logger.Nop())

	create := appcategory.NewCreateCategoryUseCase(categories)
	list := appcategory.NewListCategoriesUseCase(categories)
	del := appcategory.NewDeleteCategoryUseCase(categories, books, memory.NewTxManager(), logger.Nop())

	created, err := create.Execute(ctx, "科幻")
	require.NoError(t, err)
	_, err = create.Execute(ctx, "历史")
	require.NoError(t, err)

	t.Run("列表按ID排序", func(t *testing.T) {
		all, err := list.Execute(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "科幻", all[0].Name)
	})

	t.Run("删除分类后图书变为未分类", func(t *testing.T) {
		b := book.NewBook("三体", created.ID, "", "i", "", "", 1)
		require.NoError(t, bookRepo.Create(ctx, b))

		resp, err := del.Execute(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "科幻", resp.Name)

		got, err := books.GetBookByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Zero(t, got.CategoryID)
		assert.Nil(t, got.Category)
	})

	t.Run("分类不存在", func(t *testing.T) {
		_, err := del.Execute(ctx, created.ID)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestDeleteCategory_FlushAfterCommit(t *testing.T) {
	ctx := context.Background()
	trace := &orderTrace{}
	categoryRepo := memory.NewCategoryRepository()
	bookRepo := memory.NewBookRepository(categoryRepo, nil)
	categories := category.NewService(categoryRepo)
	books := book.NewService(bookRepo, categories, &flushCache{trace: trace}, logger.Nop())
	tx := &tracingTx{trace: trace, inner: memory.NewTxManager()}
	del := appcategory.NewDeleteCategoryUseCase(categories, books, tx, logger.Nop())

	withBooks, err := categories.Create(ctx, "科幻")
	require.NoError(t, err)
	empty, err := categories.Create(ctx, "诗歌")
	require.NoError(t, err)
	require.NoError(t, bookRepo.Create(ctx, book.NewBook("三体", withBooks.ID, "", "i", "", "", 1)))

	t.Run("有图书引用时提交后清空缓存", func(t *testing.T) {
		_, err := del.Execute(ctx, withBooks.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"commit", "flush"}, trace.events)
	})

	t.Run("没有引用不清空缓存", func(t *testing.T) {
		trace.events = nil
		_, err := del.Execute(ctx, empty.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"commit"}, trace.events)
	})

	t.Run("删除失败不清空缓存", func(t *testing.T) {
		trace.events = nil
		_, err := del.Execute(ctx, withBooks.ID)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
		assert.Empty(t, trace.events)
	})
}
