package dto

// CartPageQuery 购物车分页参数(page从0开始)
type CartPageQuery struct {
	Page int `form:"page" binding:"min=0" example:"0"`
	Size int `form:"size" binding:"min=0" example:"20"`
}

// CreateCartRequest 创建购物车
type CreateCartRequest struct {
	UserID uint `json:"user_id" binding:"required" example:"1"`
}
