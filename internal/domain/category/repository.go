package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类，名称重复返回ErrNameDuplicate
	Create(ctx context.Context, category *Category) error

	// FindByID 不存在返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindAll 全部分类（按ID升序）
	FindAll(ctx context.Context) ([]*Category, error)

	// Delete 删除分类
	Delete(ctx context.Context, id uint) error
}
