package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
)

// newTestClient 需要真实的Redis，通过BOOKSTORE_TEST_REDIS_ADDR指定（如localhost:6379）
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("BOOKSTORE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("未设置BOOKSTORE_TEST_REDIS_ADDR，跳过Redis测试")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())
	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestBookCache(t *testing.T) {
	ctx := context.Background()
	cache := NewBookCache(newTestClient(t), time.Minute, time.Minute)

	t.Run("未命中返回nil", func(t *testing.T) {
		b, err := cache.GetBook(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, b)

		publishers, err := cache.GetPublishers(ctx)
		require.NoError(t, err)
		assert.Nil(t, publishers)
	})

	t.Run("写入后命中", func(t *testing.T) {
		require.NoError(t, cache.SetBook(ctx, &book.Book{ID: 1, Name: "Go", Quantity: 3}))
		require.NoError(t, cache.SetPublishers(ctx, []string{"甲", "乙"}))

		b, err := cache.GetBook(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "Go", b.Name)

		publishers, err := cache.GetPublishers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"甲", "乙"}, publishers)
	})

	t.Run("失效删除详情和出版社", func(t *testing.T) {
		require.NoError(t, cache.Invalidate(ctx, 1))
		b, err := cache.GetBook(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, b)
		publishers, err := cache.GetPublishers(ctx)
		require.NoError(t, err)
		assert.Nil(t, publishers)
	})

	t.Run("清空全部图书缓存", func(t *testing.T) {
		for i := uint(1); i <= 150; i++ {
			require.NoError(t, cache.SetBook(ctx, &book.Book{ID: i}))
		}
		require.NoError(t, cache.Flush(ctx))
		b, err := cache.GetBook(ctx, 150)
		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newTestClient(t))

	require.NoError(t, store.SaveSession(ctx, 1, map[string]interface{}{"username": "alice"}, time.Minute))
	require.NoError(t, store.DeleteSession(ctx, 1))

	revoked, err := store.IsBlacklisted(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.AddToBlacklist(ctx, "token", time.Minute))
	revoked, err = store.IsBlacklisted(ctx, "token")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRateLimiter(t *testing.T) {
	ctx := context.Background()
	limiter := NewRateLimiter(newTestClient(t), 2, time.Minute)

	for i, want := range []bool{true, true, false} {
		allowed, err := limiter.Allow(ctx, "login:127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "第%d次请求", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}
