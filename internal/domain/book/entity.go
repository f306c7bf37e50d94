package book

import (
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/category"
)

// 图书状态
const (
	StatusOnSale       = "on_sale"
	StatusSoldOut      = "sold_out"
	StatusComingSoon   = "coming_soon"
	StatusDiscontinued = "discontinued"
)

// Statuses 合法的图书状态（GET /api/books/status）
var Statuses = []string{StatusOnSale, StatusSoldOut, StatusComingSoon, StatusDiscontinued}

// Book 图书实体(聚合根)
// 设计说明:
// 1. CategoryID为0表示未分类(分类被删除后图书会被解除关联)
// 2. Category只在查询时填充,写入时以CategoryID为准
// 3. Image保存存储后的文件名,不含上传目录
type Book struct {
	ID          uint
	Name        string
	CategoryID  uint
	Category    *category.Category
	Description string
	Image       string
	Status      string
	Publisher   string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(name string, categoryID uint, description, image, status, publisher string, quantity int) *Book {
	now := time.Now()
	return &Book{
		Name:        name,
		CategoryID:  categoryID,
		Description: description,
		Image:       image,
		Status:      status,
		Publisher:   publisher,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateParams 更新图书的表单内容
// Image为空表示保留原封面
type UpdateParams struct {
	Name        string
	CategoryID  uint
	Description string
	Image       string
	Status      string
	Publisher   string
	Quantity    int
}

// Apply 用表单内容覆盖图书字段(领域行为)
// 除Image外所有字段都会被覆盖,包括空字符串
func (b *Book) Apply(p UpdateParams) {
	b.Name = p.Name
	b.CategoryID = p.CategoryID
	b.Description = p.Description
	b.Status = p.Status
	b.Publisher = p.Publisher
	b.Quantity = p.Quantity
	if p.Image != "" {
		b.Image = p.Image
	}
	if b.Category != nil && b.Category.ID != p.CategoryID {
		b.Category = nil
	}
	b.UpdatedAt = time.Now()
}
