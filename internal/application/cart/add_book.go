package cart

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
)

// AddBookUseCase 加入购物车用例
// 设计说明：
// 1. 购物车、图书任一不存在返回404
// 2. 重复加入同一本书时数量累加（仓储层upsert）
// 3. 成功后发布cart.book_added事件
type AddBookUseCase struct {
	cartService cart.Service
	bookService book.Service
	events      application.EventPublisher
	logger      *zerolog.Logger
}

// NewAddBookUseCase 创建用例
func NewAddBookUseCase(
	cartService cart.Service,
	bookService book.Service,
	events application.EventPublisher,
	logger *zerolog.Logger,
) *AddBookUseCase {
	return &AddBookUseCase{
		cartService: cartService,
		bookService: bookService,
		events:      events,
		logger:      logger,
	}
}

// CartBookEvent 事件负载
type CartBookEvent struct {
	CartID uint `json:"cart_id"`
	BookID uint `json:"book_id"`
}

// Execute 加入图书
func (uc *AddBookUseCase) Execute(ctx context.Context, cartID, bookID uint) error {
	if _, err := uc.cartService.GetCart(ctx, cartID); err != nil {
		return err
	}
	if _, err := uc.bookService.GetBookByID(ctx, bookID); err != nil {
		return err
	}

	if err := uc.cartService.AddBook(ctx, cartID, bookID); err != nil {
		return err
	}

	metrics.RecordCartBookAdded()
	event := application.NewEvent(application.EventCartBookAdded, CartBookEvent{CartID: cartID, BookID: bookID})
	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn().Err(err).Uint("cart_id", cartID).Uint("book_id", bookID).Msg("发布购物车事件失败")
	}
	return nil
}
