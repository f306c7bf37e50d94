package book

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
	"github.com/xiebiao/bookstore-manager/pkg/saga"
)

// UpdateBookUseCase 更新图书用例
// 流程:
// 1. 表单校验(数量、名称、分类),失败返回422,不写文件
// 2. 图书不存在返回404
// 3. 上传了新封面时: Saga 保存新封面 → 更新图书,更新失败删除新封面
// 4. 更新成功后尽力删除旧封面
type UpdateBookUseCase struct {
	bookService book.Service
	images      ImageStore
	events      application.EventPublisher
	logger      *zerolog.Logger
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(
	bookService book.Service,
	images ImageStore,
	events application.EventPublisher,
	logger *zerolog.Logger,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		images:      images,
		events:      events,
		logger:      logger,
	}
}

// UpdateBookRequest 更新图书请求DTO
type UpdateBookRequest struct {
	ID          uint
	Name        string
	CategoryID  uint
	Description string
	Status      string
	Publisher   string
	Quantity    int
	Image       *multipart.FileHeader // 为空表示保留原封面
}

func (r UpdateBookRequest) params(image string) book.UpdateParams {
	return book.UpdateParams{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Image:       image,
		Status:      r.Status,
		Publisher:   r.Publisher,
		Quantity:    r.Quantity,
	}
}

// Execute 执行更新图书
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResponse, error) {
	if err := book.ValidateUpdate(req.params("")); err != nil {
		return nil, err
	}

	current, err := uc.bookService.GetBookByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldImage := current.Image

	var (
		image   string
		updated *book.Book
	)

	s := saga.New(uc.logger)
	if req.Image != nil && req.Image.Size > 0 {
		s.AddStep("store-image", func(ctx context.Context) error {
			name, err := uc.images.Save(ctx, req.Image)
			if err != nil {
				return err
			}
			image = name
			return nil
		}, func(ctx context.Context) error {
			return uc.images.Remove(ctx, image)
		})
	}
	s.AddStep("update-book", func(ctx context.Context) error {
		b, err := uc.bookService.UpdateBook(ctx, req.ID, req.params(image))
		if err != nil {
			return err
		}
		updated = b
		return nil
	}, nil)

	if err := s.Execute(ctx); err != nil {
		return nil, err
	}

	if image != "" && oldImage != "" && oldImage != image {
		if err := uc.images.Remove(ctx, oldImage); err != nil {
			uc.logger.Warn().Err(err).Str("file", oldImage).Msg("删除旧封面失败")
		}
	}

	metrics.RecordBookMutation("update")
	publish(ctx, uc.events, uc.logger, application.EventBookUpdated, updated)
	return ToBookResponse(updated), nil
}
