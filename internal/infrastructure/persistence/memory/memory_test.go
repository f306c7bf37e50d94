package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
	"github.com/xiebiao/bookstore-manager/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

func TestBookRepository_FindPage(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(nil, nil)

	for i := 1; i <= 30; i++ {
		publisher := "人民邮电出版社"
		if i%3 == 0 {
			publisher = "机械工业出版社"
		}
		b := book.NewBook(fmt.Sprintf("Go实战%02d", i), 0, "", "cover.png", book.StatusOnSale, publisher, i)
		require.NoError(t, repo.Create(ctx, b))
	}

	t.Run("第0页12条", func(t *testing.T) {
		books, total, err := repo.FindPage(ctx, book.PageQuery{Page: 0, Size: book.PageSize})
		require.NoError(t, err)
		assert.Equal(t, int64(30), total)
		assert.Len(t, books, 12)
		assert.Equal(t, uint(1), books[0].ID)
	})

	t.Run("最后一页不足12条", func(t *testing.T) {
		books, _, err := repo.FindPage(ctx, book.PageQuery{Page: 2, Size: book.PageSize})
		require.NoError(t, err)
		assert.Len(t, books, 6)
	})

	t.Run("超出范围返回空列表", func(t *testing.T) {
		books, total, err := repo.FindPage(ctx, book.PageQuery{Page: 9, Size: book.PageSize})
		require.NoError(t, err)
		assert.Equal(t, int64(30), total)
		assert.Empty(t, books)
	})

	t.Run("书名搜索不区分大小写", func(t *testing.T) {
		_, total, err := repo.FindPage(ctx, book.PageQuery{Name: "go实战", Size: book.PageSize})
		require.NoError(t, err)
		assert.Equal(t, int64(30), total)

		_, total, err = repo.FindPage(ctx, book.PageQuery{Name: "GO实战0", Size: book.PageSize})
		require.NoError(t, err)
		assert.Equal(t, int64(9), total)
	})

	t.Run("书名与出版社组合过滤", func(t *testing.T) {
		books, total, err := repo.FindPage(ctx, book.PageQuery{Name: "实战1", Publisher: "机械工业出版社", Size: book.PageSize})
		require.NoError(t, err)
		// 12、15、18
		assert.Equal(t, int64(3), total)
		for _, b := range books {
			assert.Equal(t, "机械工业出版社", b.Publisher)
		}
	})
}

func TestBookRepository_Publishers(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(nil, nil)

	for _, p := range []string{"b社", "a社", "", "b社"} {
		require.NoError(t, repo.Create(ctx, book.NewBook("x", 0, "", "i", "", p, 1)))
	}

	publishers, err := repo.FindAllPublishers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a社", "b社"}, publishers)
}

func TestBookRepository_CategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	categories := NewCategoryRepository()
	repo := NewBookRepository(categories, nil)

	c := category.NewCategory("计算机")
	require.NoError(t, categories.Create(ctx, c))

	b := book.NewBook("Go", c.ID, "", "i", "", "", 1)
	require.NoError(t, repo.Create(ctx, b))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	assert.Equal(t, "计算机", found.Category.Name)

	n, err := repo.DetachCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	found, err = repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, found.CategoryID)
	assert.Nil(t, found.Category)
}

func TestBookRepository_DeleteRemovesCartDetails(t *testing.T) {
	ctx := context.Background()
	carts := NewCartRepository()
	repo := NewBookRepository(nil, carts)

	b := book.NewBook("Go", 0, "", "i", "", "", 1)
	require.NoError(t, repo.Create(ctx, b))
	c := cart.NewCart(1)
	require.NoError(t, carts.Create(ctx, c))
	require.NoError(t, carts.AddBook(ctx, c.ID, b.ID))

	require.NoError(t, repo.Delete(ctx, b.ID))

	found, err := carts.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Details)

	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)
}

func TestBookRepository_FindByIDsKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(nil, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, book.NewBook(fmt.Sprint(i), 0, "", "i", "", "", 1)))
	}

	books, err := repo.FindByIDs(ctx, []uint{3, 99, 1})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, uint(3), books[0].ID)
	assert.Equal(t, uint(1), books[1].ID)
}

func TestCartRepository_AddBookUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository()

	c := cart.NewCart(7)
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.AddBook(ctx, c.ID, 10))
	require.NoError(t, repo.AddBook(ctx, c.ID, 10))
	require.NoError(t, repo.AddBook(ctx, c.ID, 11))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, found.Details, 2)
	assert.Equal(t, 2, found.Details[0].Quantity)
	assert.Equal(t, []uint{10, 11}, found.BookIDs())

	assert.ErrorIs(t, repo.AddBook(ctx, 999, 10), cart.ErrCartNotFound)
}

func TestCartRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, cart.NewCart(1)))
	}

	carts, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, carts, 2)
	assert.Equal(t, uint(3), carts[0].ID)
}

func TestCategoryRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	require.NoError(t, repo.Create(ctx, category.NewCategory("文学")))
	assert.ErrorIs(t, repo.Create(ctx, category.NewCategory(" 文学 ")), category.ErrNameDuplicate)
	assert.ErrorIs(t, repo.Delete(ctx, 42), category.ErrCategoryNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := user.NewUser("alice", "hash", "")
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, "alice", u.Nickname)

	assert.ErrorIs(t, repo.Create(ctx, user.NewUser("alice", "hash", "")), apperrors.ErrUsernameDuplicate)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSessionStore_Blacklist(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()
	now := s.now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.AddToBlacklist(ctx, "token", time.Minute))
	ok, err := s.IsBlacklisted(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	ok, err = s.IsBlacklisted(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveSession(ctx, 1, nil, time.Hour))
	assert.True(t, s.HasSession(1))
	require.NoError(t, s.DeleteSession(ctx, 1))
	assert.False(t, s.HasSession(1))
}
