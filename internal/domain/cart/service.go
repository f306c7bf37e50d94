package cart

import (
	"context"
)

// Service 购物车领域服务
type Service interface {
	// CreateCart 为用户创建购物车(用户存在性由应用层校验)
	CreateCart(ctx context.Context, userID uint) (*Cart, error)

	// GetCart 获取购物车及明细
	GetCart(ctx context.Context, id uint) (*Cart, error)

	// ListCarts 分页查询,size<=0使用默认值,超过上限截断
	ListCarts(ctx context.Context, page, size int) ([]*Cart, int64, int, error)

	// AddBook 加入图书(重复加入数量累加)
	AddBook(ctx context.Context, cartID, bookID uint) error

	// DeleteCart 删除购物车及明细,返回删除前的实体
	// 需要在事务中调用
	DeleteCart(ctx context.Context, id uint) (*Cart, error)
}

type service struct {
	repo Repository
}

// NewService 创建购物车领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCart(ctx context.Context, userID uint) (*Cart, error) {
	c := NewCart(userID)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCart(ctx context.Context, id uint) (*Cart, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListCarts(ctx context.Context, page, size int) ([]*Cart, int64, int, error) {
	if page < 0 {
		return nil, 0, 0, ErrInvalidPage
	}
	size = NormalizePageSize(size)

	carts, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, 0, 0, err
	}
	return carts, total, size, nil
}

func (s *service) AddBook(ctx context.Context, cartID, bookID uint) error {
	return s.repo.AddBook(ctx, cartID, bookID)
}

func (s *service) DeleteCart(ctx context.Context, id uint) (*Cart, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteDetails(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

// NormalizePageSize 购物车分页大小:默认20,最大100
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}
