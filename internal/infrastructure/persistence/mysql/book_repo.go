package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 所有方法通过getDB(ctx)参与调用方的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Omit("Category").Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Category").Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByIDs 批量查询图书,结果按ids顺序
func (r *bookRepository) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	if len(ids) == 0 {
		return []*book.Book{}, nil
	}

	var models []BookModel
	if err := getDB(ctx, r.db).Preload("Category").Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	byID := make(map[uint]*BookModel, len(models))
	for i := range models {
		byID[models[i].ID] = &models[i]
	}

	books := make([]*book.Book, 0, len(models))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			books = append(books, toBookEntity(m))
		}
	}
	return books, nil
}

// Update 更新图书(覆盖全部字段)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Omit("Category", "CreatedAt").Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书,同时删除引用它的购物车明细
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&CartDetailModel{}).Error; err != nil {
			return apperrors.Wrap(err, "删除购物车明细失败")
		}

		result := tx.Where("id = ?", id).Delete(&BookModel{})
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
}

// FindPage 分页查询
// SELECT * FROM books WHERE name LIKE ? AND publisher = ? ORDER BY id LIMIT ? OFFSET ?
func (r *bookRepository) FindPage(ctx context.Context, q book.PageQuery) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})
	if q.Name != "" {
		query = query.Where("name LIKE ?", likePattern(q.Name))
	}
	if q.Publisher != "" {
		query = query.Where("publisher = ?", q.Publisher)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	err := query.Preload("Category").
		Order("id ASC").
		Limit(q.Size).
		Offset(q.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// FindAllPublishers SELECT DISTINCT publisher FROM books ORDER BY publisher
func (r *bookRepository) FindAllPublishers(ctx context.Context) ([]string, error) {
	publishers := []string{}
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("publisher <> ''").
		Distinct("publisher").
		Order("publisher ASC").
		Pluck("publisher", &publishers).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询出版社失败")
	}
	return publishers, nil
}

// DetachCategory UPDATE books SET category_id = NULL WHERE category_id = ?
func (r *bookRepository) DetachCategory(ctx context.Context, categoryID uint) (int64, error) {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "解除图书分类失败")
	}
	return result.RowsAffected, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	model := &BookModel{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Status:      b.Status,
		Publisher:   b.Publisher,
		Quantity:    b.Quantity,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.CategoryID != 0 {
		id := b.CategoryID
		model.CategoryID = &id
	}
	return model
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Image:       model.Image,
		Status:      model.Status,
		Publisher:   model.Publisher,
		Quantity:    model.Quantity,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.CategoryID != nil {
		b.CategoryID = *model.CategoryID
	}
	if model.Category != nil {
		b.Category = toCategoryEntity(model.Category)
	}
	return b
}

func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
