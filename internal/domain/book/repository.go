package book

import (
	"context"
)

// PageSize 图书列表固定每页12条
const PageSize = 12

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现(mysql/memory)
type Repository interface {
	// Create 创建图书,成功后回填ID
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书(填充Category),不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByIDs 批量查询,不存在的ID被忽略,结果按ids顺序
	FindByIDs(ctx context.Context, ids []uint) ([]*Book, error)

	// Update 更新图书
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// FindPage 分页查询,按ID升序
	FindPage(ctx context.Context, q PageQuery) ([]*Book, int64, error)

	// FindAllPublishers 去重后按字典序排列的出版社列表(忽略空值)
	FindAllPublishers(ctx context.Context) ([]string, error)

	// DetachCategory 将引用该分类的图书的分类置空,返回受影响行数
	DetachCategory(ctx context.Context, categoryID uint) (int64, error)
}

// PageQuery 分页查询条件
type PageQuery struct {
	Name      string // 书名包含(为空不过滤)
	Publisher string // 出版社精确匹配(为空不过滤)
	Page      int    // 页码(从0开始)
	Size      int    // 每页数量
}

// Offset 计算偏移量
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// Cache 图书缓存(Cache-Aside)
// 未命中返回nil,nil
type Cache interface {
	GetBook(ctx context.Context, id uint) (*Book, error)
	SetBook(ctx context.Context, book *Book) error
	GetPublishers(ctx context.Context) ([]string, error)
	SetPublishers(ctx context.Context, publishers []string) error

	// Invalidate 删除图书详情和出版社列表缓存
	Invalidate(ctx context.Context, id uint) error

	// Flush 删除全部图书缓存
	Flush(ctx context.Context) error
}

// CategoryChecker 校验分类是否存在
type CategoryChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}
