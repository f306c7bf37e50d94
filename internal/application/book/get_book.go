package book

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
)

// GetBookUseCase 图书查询用例（详情、出版社列表、状态列表）
// 三个查询都是对领域服务的直接转发，合并在一个用例中
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建图书查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 获取图书详情
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBookResponse(b), nil
}

// Publishers 全部出版社
func (uc *GetBookUseCase) Publishers(ctx context.Context) ([]string, error) {
	return uc.bookService.ListPublishers(ctx)
}

// Statuses 图书状态枚举
func (uc *GetBookUseCase) Statuses() []string {
	return uc.bookService.Statuses()
}
