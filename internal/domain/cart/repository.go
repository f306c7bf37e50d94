package cart

import (
	"context"
)

// 购物车列表分页参数
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Repository 购物车仓储接口
// 支持事务操作(通过context传递事务,见TxManager)
type Repository interface {
	// Create 创建购物车
	Create(ctx context.Context, cart *Cart) error

	// FindByID 根据ID查找购物车(包含明细),不存在返回ErrCartNotFound
	FindByID(ctx context.Context, id uint) (*Cart, error)

	// List 分页查询购物车(不含明细),按ID升序,page从0开始
	List(ctx context.Context, page, size int) ([]*Cart, int64, error)

	// AddBook 加入图书:明细不存在时插入(数量1),存在时数量+1
	AddBook(ctx context.Context, cartID, bookID uint) error

	// DeleteDetails 删除购物车的全部明细
	DeleteDetails(ctx context.Context, cartID uint) error

	// Delete 删除购物车
	Delete(ctx context.Context, id uint) error
}
