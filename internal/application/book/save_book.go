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

// SaveBookUseCase 新增图书用例
// 流程:
// 1. 必须上传封面,否则返回ErrImageRequired,不落库不写文件
// 2. Saga: 保存封面 → 保存图书;保存图书失败时删除已写入的封面
// 3. 成功后记录指标并发布book.created事件
type SaveBookUseCase struct {
	bookService book.Service
	images      ImageStore
	events      application.EventPublisher
	logger      *zerolog.Logger
}

// NewSaveBookUseCase 创建新增图书用例
func NewSaveBookUseCase(
	bookService book.Service,
	images ImageStore,
	events application.EventPublisher,
	logger *zerolog.Logger,
) *SaveBookUseCase {
	return &SaveBookUseCase{
		bookService: bookService,
		images:      images,
		events:      events,
		logger:      logger,
	}
}

// SaveBookRequest 新增图书请求DTO
type SaveBookRequest struct {
	Name        string
	CategoryID  uint
	Description string
	Status      string
	Publisher   string
	Quantity    int
	Image       *multipart.FileHeader // 封面(必填)
}

// Execute 执行新增图书
func (uc *SaveBookUseCase) Execute(ctx context.Context, req SaveBookRequest) (*BookResponse, error) {
	if req.Image == nil || req.Image.Size == 0 {
		return nil, book.ErrImageRequired
	}

	var (
		image string
		b     *book.Book
	)

	err := saga.New(uc.logger).
		AddStep("store-image", func(ctx context.Context) error {
			name, err := uc.images.Save(ctx, req.Image)
			if err != nil {
				return err
			}
			image = name
			return nil
		}, func(ctx context.Context) error {
			return uc.images.Remove(ctx, image)
		}).
		AddStep("persist-book", func(ctx context.Context) error {
			b = book.NewBook(req.Name, req.CategoryID, req.Description, image, req.Status, req.Publisher, req.Quantity)
			return uc.bookService.SaveBook(ctx, b)
		}, nil).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RecordBookMutation("create")
	publish(ctx, uc.events, uc.logger, application.EventBookCreated, b)

	// 重新读取以填充Category
	saved, err := uc.bookService.GetBookByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return ToBookResponse(saved), nil
}

// BookEvent 图书事件负载
type BookEvent struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
	Quantity  int    `json:"quantity"`
}

// publish 发布图书事件,失败只记录日志
func publish(ctx context.Context, events application.EventPublisher, logger *zerolog.Logger, eventType string, b *book.Book) {
	payload := BookEvent{ID: b.ID, Name: b.Name, Publisher: b.Publisher, Quantity: b.Quantity}
	if err := events.Publish(ctx, application.NewEvent(eventType, payload)); err != nil {
		logger.Warn().Err(err).Str("event", eventType).Uint("book_id", b.ID).Msg("发布图书事件失败")
	}
}
