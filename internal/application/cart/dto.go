package cart

import (
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
)

const timeLayout = "2006-01-02 15:04:05"

// DetailResponse 购物车明细
type DetailResponse struct {
	BookID    uint   `json:"book_id"`
	Quantity  int    `json:"quantity"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CartResponse 购物车响应DTO
type CartResponse struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	Details   []*DetailResponse `json:"details,omitempty"`
	CreatedAt string            `json:"created_at"`
}

func toCartResponse(c *cart.Cart) *CartResponse {
	resp := &CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.Format(timeLayout),
	}
	for _, d := range c.Details {
		resp.Details = append(resp.Details, &DetailResponse{
			BookID:    d.BookID,
			Quantity:  d.Quantity,
			CreatedAt: d.CreatedAt.Format(timeLayout),
			UpdatedAt: d.UpdatedAt.Format(timeLayout),
		})
	}
	return resp
}
