package book

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-manager/pkg/validate"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 查询走Cache-Aside:先查缓存,未命中查库后回填
// 2. 缓存故障只记录日志,降级为直接查库
// 3. 写操作成功后删除相关缓存
type Service interface {
	// GetBookByID 根据ID获取图书
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListPublishers 全部出版社(去重,排序)
	ListPublishers(ctx context.Context) ([]string, error)

	// ListBooks 分页查询,Name非空时按书名模糊匹配
	ListBooks(ctx context.Context, q PageQuery) ([]*Book, int64, error)

	// Statuses 合法的图书状态
	Statuses() []string

	// SaveBook 保存新图书,CategoryID非0时校验分类存在
	SaveBook(ctx context.Context, book *Book) error

	// UpdateBook 更新图书
	// 校验顺序:数量>=0、名称非空、分类已选择 → 图书存在 → 分类存在
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书,返回删除前的实体
	DeleteBook(ctx context.Context, id uint) (*Book, error)

	// FindBooksByIDs 批量查询(购物车中的图书),不走缓存
	FindBooksByIDs(ctx context.Context, ids []uint) ([]*Book, error)

	// DetachCategory 解除图书与分类的关联(删除分类时在事务中调用)
	// 不清理缓存,事务提交后由调用方执行FlushCache
	DetachCategory(ctx context.Context, categoryID uint) (int64, error)

	// FlushCache 清空全部图书缓存,失败只记录日志
	FlushCache(ctx context.Context)
}

// ValidateUpdate 更新表单校验,任一失败返回ValidationFailed错误
func ValidateUpdate(p UpdateParams) error {
	if !validate.NotNegative(p.Quantity) {
		return ErrQuantityNegative
	}
	if !validate.NotBlank(p.Name) {
		return ErrNameRequired
	}
	if p.CategoryID == 0 {
		return ErrCategoryRequired
	}
	return nil
}

type service struct {
	repo       Repository
	categories CategoryChecker
	cache      Cache
	logger     *zerolog.Logger
}

// NewService 创建图书领域服务,cache为nil时不使用缓存
func NewService(repo Repository, categories CategoryChecker, cache Cache, logger *zerolog.Logger) Service {
	if cache == nil {
		cache = nopCache{}
	}
	return &service{
		repo:       repo,
		categories: categories,
		cache:      cache,
		logger:     logger,
	}
}

func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	cached, err := s.cache.GetBook(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Uint("book_id", id).Msg("读取图书缓存失败")
	}
	if cached != nil {
		return cached, nil
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetBook(ctx, b); err != nil {
		s.logger.Warn().Err(err).Uint("book_id", id).Msg("写入图书缓存失败")
	}
	return b, nil
}

func (s *service) ListPublishers(ctx context.Context) ([]string, error) {
	cached, err := s.cache.GetPublishers(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("读取出版社缓存失败")
	}
	if cached != nil {
		return cached, nil
	}

	publishers, err := s.repo.FindAllPublishers(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPublishers(ctx, publishers); err != nil {
		s.logger.Warn().Err(err).Msg("写入出版社缓存失败")
	}
	return publishers, nil
}

func (s *service) ListBooks(ctx context.Context, q PageQuery) ([]*Book, int64, error) {
	if q.Page < 0 {
		return nil, 0, ErrInvalidPage
	}
	if q.Size <= 0 {
		q.Size = PageSize
	}
	q.Name = strings.TrimSpace(q.Name)
	return s.repo.FindPage(ctx, q)
}

func (s *service) Statuses() []string {
	out := make([]string, len(Statuses))
	copy(out, Statuses)
	return out
}

func (s *service) SaveBook(ctx context.Context, b *Book) error {
	if b.CategoryID != 0 {
		if err := s.checkCategory(ctx, b.CategoryID); err != nil {
			return err
		}
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return err
	}

	s.invalidate(ctx, b.ID)
	return nil
}

func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	if err := ValidateUpdate(params); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	b.Apply(params)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	// 重新读取以填充新的Category
	return s.repo.FindByID(ctx, id)
}

func (s *service) DeleteBook(ctx context.Context, id uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return b, nil
}

func (s *service) FindBooksByIDs(ctx context.Context, ids []uint) ([]*Book, error) {
	if len(ids) == 0 {
		return []*Book{}, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) DetachCategory(ctx context.Context, categoryID uint) (int64, error) {
	return s.repo.DetachCategory(ctx, categoryID)
}

// 详情缓存中内嵌了分类,无法按分类定位,只能整体清空
func (s *service) FlushCache(ctx context.Context) {
	if err := s.cache.Flush(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("清空图书缓存失败")
	}
}

func (s *service) checkCategory(ctx context.Context, categoryID uint) error {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotExist
	}
	return nil
}

func (s *service) invalidate(ctx context.Context, id uint) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Uint("book_id", id).Msg("删除图书缓存失败")
	}
}

// nopCache 未启用缓存时使用
type nopCache struct{}

func (nopCache) GetBook(context.Context, uint) (*Book, error)    { return nil, nil }
func (nopCache) SetBook(context.Context, *Book) error            { return nil }
func (nopCache) GetPublishers(context.Context) ([]string, error) { return nil, nil }
func (nopCache) SetPublishers(context.Context, []string) error   { return nil }
func (nopCache) Invalidate(context.Context, uint) error          { return nil }
func (nopCache) Flush(context.Context) error                     { return nil }
