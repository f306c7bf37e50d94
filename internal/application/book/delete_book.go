package book

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例
// 返回删除前的图书;封面文件在删除成功后尽力清理
type DeleteBookUseCase struct {
	bookService book.Service
	images      ImageStore
	events      application.EventPublisher
	logger      *zerolog.Logger
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(
	bookService book.Service,
	images ImageStore,
	events application.EventPublisher,
	logger *zerolog.Logger,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		images:      images,
		events:      events,
		logger:      logger,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookService.DeleteBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.images.Remove(ctx, b.Image); err != nil {
		uc.logger.Warn().Err(err).Str("file", b.Image).Msg("删除封面失败")
	}

	metrics.RecordBookMutation("delete")
	publish(ctx, uc.events, uc.logger, application.EventBookDeleted, b)
	return ToBookResponse(b), nil
}
