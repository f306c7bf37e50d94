package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
)

// 缓存Key
const (
	bookKeyPattern      = "bookstore:book:*"
	bookDetailKeyPrefix = "bookstore:book:detail:"
	publishersKey       = "bookstore:book:publishers"
)

// BookCache 图书缓存（Cache-Aside）
//
// 1. 查询：先查缓存，未命中返回nil,nil，由领域服务查库后回填
// 2. 写操作：更新数据库后删除缓存，下次查询重新加载
// 3. 详情和出版社列表分别设置TTL
type BookCache struct {
	client        *redis.Client
	detailTTL     time.Duration
	publishersTTL time.Duration
}

var _ book.Cache = (*BookCache)(nil)

// NewBookCache 创建图书缓存
func NewBookCache(client *redis.Client, detailTTL, publishersTTL time.Duration) *BookCache {
	return &BookCache{
		client:        client,
		detailTTL:     detailTTL,
		publishersTTL: publishersTTL,
	}
}

func detailKey(id uint) string {
	return fmt.Sprintf("%s%d", bookDetailKeyPrefix, id)
}

// GetBook 获取图书详情缓存
func (c *BookCache) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	val, err := c.client.Get(ctx, detailKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCache("detail", "miss")
			return nil, nil
		}
		metrics.RecordCache("detail", "error")
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal(val, &b); err != nil {
		metrics.RecordCache("detail", "error")
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}

	metrics.RecordCache("detail", "hit")
	return &b, nil
}

// SetBook 设置图书详情缓存
func (c *BookCache) SetBook(ctx context.Context, b *book.Book) error {
	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, detailKey(b.ID), val, c.detailTTL).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// GetPublishers 获取出版社列表缓存
func (c *BookCache) GetPublishers(ctx context.Context) ([]string, error) {
	val, err := c.client.Get(ctx, publishersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCache("publishers", "miss")
			return nil, nil
		}
		metrics.RecordCache("publishers", "error")
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	publishers := []string{}
	if err := json.Unmarshal(val, &publishers); err != nil {
		metrics.RecordCache("publishers", "error")
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}

	metrics.RecordCache("publishers", "hit")
	return publishers, nil
}

// SetPublishers 设置出版社列表缓存
func (c *BookCache) SetPublishers(ctx context.Context, publishers []string) error {
	if publishers == nil {
		publishers = []string{}
	}
	val, err := json.Marshal(publishers)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, publishersKey, val, c.publishersTTL).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// Invalidate 删除图书详情与出版社列表缓存（UNLINK异步删除）
func (c *BookCache) Invalidate(ctx context.Context, id uint) error {
	if err := c.client.Unlink(ctx, detailKey(id), publishersKey).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

// Flush 使用SCAN遍历删除全部图书缓存（避免KEYS阻塞Redis）
func (c *BookCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, bookKeyPattern, 100).Iterator()
	keys := make([]string, 0, 100)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == 100 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("删除缓存失败: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("扫描缓存失败: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("删除缓存失败: %w", err)
		}
	}
	return nil
}
