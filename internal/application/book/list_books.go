package book

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// ListBooksUseCase 图书分页查询用例
// 设计说明:
// 1. 每页固定12条,页码从0开始
// 2. Query非空时按书名模糊搜索,Publisher非空时限定出版社,两者可以组合
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Query     string // 书名关键词
	Publisher string // 出版社
	Page      int    // 页码(从0开始)
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List []*BookResponse `json:"list"`
	response.PageMeta
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	books, total, err := uc.bookService.ListBooks(ctx, book.PageQuery{
		Name:      req.Query,
		Publisher: req.Publisher,
		Page:      req.Page,
		Size:      book.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:     ToBookResponses(books),
		PageMeta: response.NewPageMeta(total, req.Page, book.PageSize),
	}, nil
}
