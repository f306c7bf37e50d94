package category

import (
	"context"
	"errors"

	"github.com/xiebiao/bookstore-manager/pkg/validate"
)

// Service 分类领域服务
type Service interface {
	// Create 创建分类，名称不能为空
	Create(ctx context.Context, name string) (*Category, error)

	// GetByID 根据ID获取分类
	GetByID(ctx context.Context, id uint) (*Category, error)

	// FindAll 全部分类
	FindAll(ctx context.Context) ([]*Category, error)

	// Exists 分类是否存在（更新图书时校验引用）
	Exists(ctx context.Context, id uint) (bool, error)

	// Delete 删除分类，返回删除前的实体
	// 引用该分类的图书需先解除关联（见应用层DeleteCategoryUseCase）
	Delete(ctx context.Context, id uint) (*Category, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	if !validate.NotBlank(name) {
		return nil, ErrNameRequired
	}

	c := NewCategory(name)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindAll(ctx context.Context) ([]*Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrCategoryNotFound) {
		return false, nil
	}
	return false, err
}

func (s *service) Delete(ctx context.Context, id uint) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}
