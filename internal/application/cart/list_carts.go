package cart

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// ListCartsUseCase 购物车分页查询用例
type ListCartsUseCase struct {
	cartService cart.Service
}

// NewListCartsUseCase 创建用例
func NewListCartsUseCase(cartService cart.Service) *ListCartsUseCase {
	return &ListCartsUseCase{cartService: cartService}
}

// ListCartsResponse 分页结果
type ListCartsResponse struct {
	List []*CartResponse `json:"list"`
	response.PageMeta
}

// Execute page从0开始,size默认20、最大100
func (uc *ListCartsUseCase) Execute(ctx context.Context, page, size int) (*ListCartsResponse, error) {
	carts, total, size, err := uc.cartService.ListCarts(ctx, page, size)
	if err != nil {
		return nil, err
	}

	list := make([]*CartResponse, len(carts))
	for i, c := range carts {
		list[i] = toCartResponse(c)
	}

	return &ListCartsResponse{
		List:     list,
		PageMeta: response.NewPageMeta(total, page, size),
	}, nil
}
