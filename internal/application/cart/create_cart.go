package cart

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	"github.com/xiebiao/bookstore-manager/internal/domain/user"
)

// CreateCartUseCase 创建购物车用例
// 用户不存在返回ErrUserNotFound(404)
type CreateCartUseCase struct {
	cartService cart.Service
	userService user.Service
}

// NewCreateCartUseCase 创建用例
func NewCreateCartUseCase(cartService cart.Service, userService user.Service) *CreateCartUseCase {
	return &CreateCartUseCase{
		cartService: cartService,
		userService: userService,
	}
}

// Execute 为用户创建购物车
func (uc *CreateCartUseCase) Execute(ctx context.Context, userID uint) (*CartResponse, error) {
	if _, err := uc.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	c, err := uc.cartService.CreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}
