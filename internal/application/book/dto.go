package book

import (
	"context"
	"mime/multipart"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
)

const timeLayout = "2006-01-02 15:04:05"

// ImageStore 封面存储（infrastructure/storage.ImageStorage）
type ImageStore interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, name string) error
}

// CategoryInfo 图书所属分类
type CategoryInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookResponse 图书响应DTO
type BookResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Category    *CategoryInfo `json:"category"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Status      string        `json:"status"`
	Publisher   string        `json:"publisher"`
	Quantity    int           `json:"quantity"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// ToBookResponse 领域实体 → 响应DTO
func ToBookResponse(b *book.Book) *BookResponse {
	resp := &BookResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Status:      b.Status,
		Publisher:   b.Publisher,
		Quantity:    b.Quantity,
		CreatedAt:   b.CreatedAt.Format(timeLayout),
		UpdatedAt:   b.UpdatedAt.Format(timeLayout),
	}
	if b.Category != nil {
		resp.Category = &CategoryInfo{ID: b.Category.ID, Name: b.Category.Name}
	}
	return resp
}

// ToBookResponses 批量转换
func ToBookResponses(books []*book.Book) []*BookResponse {
	list := make([]*BookResponse, len(books))
	for i, b := range books {
		list[i] = ToBookResponse(b)
	}
	return list
}
