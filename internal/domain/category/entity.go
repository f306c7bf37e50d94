package category

import (
	"strings"
	"time"
)

// Category 图书分类实体
type Category struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory 创建分类（工厂方法），名称去除首尾空白
func NewCategory(name string) *Category {
	now := time.Now()
	return &Category{
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
