package category

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
)

// CategoryResponse 分类响应DTO
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

// ListCategoriesUseCase 分类列表（不分页）
type ListCategoriesUseCase struct {
	categoryService category.Service
}

// NewListCategoriesUseCase 创建用例
func NewListCategoriesUseCase(categoryService category.Service) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryService: categoryService}
}

// Execute 查询全部分类
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*CategoryResponse, error) {
	categories, err := uc.categoryService.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = toCategoryResponse(c)
	}
	return list, nil
}

// CreateCategoryUseCase 创建分类
type CreateCategoryUseCase struct {
	categoryService category.Service
}

// NewCreateCategoryUseCase 创建用例
func NewCreateCategoryUseCase(categoryService category.Service) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryService: categoryService}
}

// Execute 名称为空返回422，重复返回409
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, name string) (*CategoryResponse, error) {
	c, err := uc.categoryService.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// DeleteCategoryUseCase 删除分类
// 设计说明：
// 1. 同一事务中先解除图书关联（category_id置NULL），再删除分类
// 2. 分类不存在返回404，事务回滚
type DeleteCategoryUseCase struct {
	categoryService category.Service
	bookService     book.Service
	txManager       application.TxManager
	logger          *zerolog.Logger
}

// NewDeleteCategoryUseCase 创建用例
func NewDeleteCategoryUseCase(
	categoryService category.Service,
	bookService book.Service,
	txManager application.TxManager,
	logger *zerolog.Logger,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryService: categoryService,
		bookService:     bookService,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute 返回删除前的分类
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) (*CategoryResponse, error) {
	var (
		deleted  *category.Category
		detached int64
	)

	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if _, err := uc.categoryService.GetByID(ctx, id); err != nil {
			return err
		}

		n, err := uc.bookService.DetachCategory(ctx, id)
		if err != nil {
			return err
		}
		detached = n

		c, err := uc.categoryService.Delete(ctx, id)
		if err != nil {
			return err
		}
		deleted = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 提交之后再清缓存,否则并发读可能把旧分类重新写回缓存
	if detached > 0 {
		uc.bookService.FlushCache(ctx)
	}

	uc.logger.Info().Uint("category_id", id).Int64("detached_books", detached).Msg("分类已删除")
	return toCategoryResponse(deleted), nil
}
