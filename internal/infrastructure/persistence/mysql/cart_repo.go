package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 设计说明:
// 1. Cart和CartDetail是聚合关系,FindByID使用Preload加载明细
// 2. AddBook使用INSERT ... ON DUPLICATE KEY UPDATE实现原子upsert
// 3. 事务通过context传递
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, c *cart.Cart) error {
	model := &CartModel{UserID: c.UserID}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 使用Preload预加载明细,避免N+1查询
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}
	return toCartEntity(&model), nil
}

func (r *cartRepository) List(ctx context.Context, page, size int) ([]*cart.Cart, int64, error) {
	var models []CartModel
	var total int64

	query := getDB(ctx, r.db).Model(&CartModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询购物车总数失败")
	}

	if err := query.Order("id ASC").Limit(size).Offset(page * size).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询购物车列表失败")
	}

	carts := make([]*cart.Cart, len(models))
	for i := range models {
		carts[i] = toCartEntity(&models[i])
	}
	return carts, total, nil
}

// AddBook INSERT INTO cart_details ... ON DUPLICATE KEY UPDATE quantity = quantity + 1
func (r *cartRepository) AddBook(ctx context.Context, cartID, bookID uint) error {
	now := time.Now()
	model := &CartDetailModel{
		CartID:    cartID,
		BookID:    bookID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": now,
		}),
	}).Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "加入购物车失败")
	}
	return nil
}

func (r *cartRepository) DeleteDetails(ctx context.Context, cartID uint) error {
	if err := getDB(ctx, r.db).Where("cart_id = ?", cartID).Delete(&CartDetailModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除购物车明细失败")
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&CartModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartNotFound
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toCartEntity(model *CartModel) *cart.Cart {
	c := &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
		Details:   make([]*cart.Detail, len(model.Details)),
	}
	for i, d := range model.Details {
		c.Details[i] = &cart.Detail{
			CartID:    d.CartID,
			BookID:    d.BookID,
			Quantity:  d.Quantity,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		}
	}
	return c
}
