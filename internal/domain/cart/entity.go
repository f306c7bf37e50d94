package cart

import (
	"time"
)

// Cart 购物车实体(聚合根)
// 设计说明:
// 1. 购物车属于一个用户(UserID)
// 2. 明细CartDetail以(CartID, BookID)唯一,重复加入同一本书时数量累加
type Cart struct {
	ID        uint
	UserID    uint
	Details   []*Detail
	CreatedAt time.Time
}

// NewCart 创建购物车(工厂方法)
func NewCart(userID uint) *Cart {
	return &Cart{
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

// Detail 购物车明细
type Detail struct {
	CartID    uint
	BookID    uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDetail 创建明细,初始数量为1
func NewDetail(cartID, bookID uint) *Detail {
	now := time.Now()
	return &Detail{
		CartID:    cartID,
		BookID:    bookID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BookIDs 明细中的图书ID(保持加入顺序)
func (c *Cart) BookIDs() []uint {
	ids := make([]uint, 0, len(c.Details))
	for _, d := range c.Details {
		ids = append(ids, d.BookID)
	}
	return ids
}
