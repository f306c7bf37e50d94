package cart

import (
	"context"

	appbook "github.com/xiebiao/bookstore-manager/internal/application/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
)

// ListCartBooksUseCase 查询购物车中的图书
type ListCartBooksUseCase struct {
	cartService cart.Service
	bookService book.Service
}

// NewListCartBooksUseCase 创建用例
func NewListCartBooksUseCase(cartService cart.Service, bookService book.Service) *ListCartBooksUseCase {
	return &ListCartBooksUseCase{
		cartService: cartService,
		bookService: bookService,
	}
}

// Execute 购物车不存在返回404,否则返回明细引用的图书(按加入顺序)
func (uc *ListCartBooksUseCase) Execute(ctx context.Context, cartID uint) ([]*appbook.BookResponse, error) {
	c, err := uc.cartService.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookService.FindBooksByIDs(ctx, c.BookIDs())
	if err != nil {
		return nil, err
	}
	return appbook.ToBookResponses(books), nil
}
