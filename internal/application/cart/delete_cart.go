package cart

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
)

// DeleteCartUseCase 删除购物车用例
// 明细和购物车在同一事务中删除
type DeleteCartUseCase struct {
	cartService cart.Service
	txManager   application.TxManager
}

// NewDeleteCartUseCase 创建用例
func NewDeleteCartUseCase(cartService cart.Service, txManager application.TxManager) *DeleteCartUseCase {
	return &DeleteCartUseCase{
		cartService: cartService,
		txManager:   txManager,
	}
}

// Execute 返回删除前的购物车
func (uc *DeleteCartUseCase) Execute(ctx context.Context, id uint) (*CartResponse, error) {
	var deleted *cart.Cart
	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		c, err := uc.cartService.DeleteCart(ctx, id)
		if err != nil {
			return err
		}
		deleted = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCartResponse(deleted), nil
}
