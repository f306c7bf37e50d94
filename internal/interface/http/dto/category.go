package dto

// CreateCategoryRequest 创建分类
// 名称为空时由领域层返回422
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"max=64" example:"计算机"`
}
