package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookstore-manager/internal/application/cart"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	createCartUseCase    *appcart.CreateCartUseCase
	listCartsUseCase     *appcart.ListCartsUseCase
	listCartBooksUseCase *appcart.ListCartBooksUseCase
	addBookUseCase       *appcart.AddBookUseCase
	deleteCartUseCase    *appcart.DeleteCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	createCartUseCase *appcart.CreateCartUseCase,
	listCartsUseCase *appcart.ListCartsUseCase,
	listCartBooksUseCase *appcart.ListCartBooksUseCase,
	addBookUseCase *appcart.AddBookUseCase,
	deleteCartUseCase *appcart.DeleteCartUseCase,
) *CartHandler {
	return &CartHandler{
		createCartUseCase:    createCartUseCase,
		listCartsUseCase:     listCartsUseCase,
		listCartBooksUseCase: listCartBooksUseCase,
		addBookUseCase:       addBookUseCase,
		deleteCartUseCase:    deleteCartUseCase,
	}
}

// ListCarts 购物车列表
// @Summary      购物车列表
// @Tags         购物车
// @Produce      json
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量(默认20,最大100)"
// @Success      200 {object} response.Response{data=appcart.ListCartsResponse}
// @Router       /api/carts [get]
func (h *CartHandler) ListCarts(c *gin.Context) {
	var query dto.CartPageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.listCartsUseCase.Execute(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateCart 创建购物车
// @Summary      创建购物车
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCartRequest true "所属用户"
// @Success      201 {object} response.Response{data=appcart.CartResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req dto.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createCartUseCase.Execute(c.Request.Context(), req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListCartBooks 购物车中的图书
// @Summary      购物车中的图书
// @Tags         购物车
// @Produce      json
// @Param        id path int true "购物车ID"
// @Success      200 {object} response.Response{data=[]appbook.BookResponse}
// @Failure      404 {object} response.Response "购物车不存在"
// @Router       /api/carts/{id} [get]
func (h *CartHandler) ListCartBooks(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	books, err := h.listCartBooksUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// AddBook 加入购物车
// @Summary      加入购物车
// @Description  重复加入同一本书时数量累加
// @Tags         购物车
// @Produce      json
// @Param        cartId path int true "购物车ID"
// @Param        bookId path int true "图书ID"
// @Success      201 {object} response.Response
// @Failure      404 {object} response.Response "购物车或图书不存在"
// @Router       /api/carts/{cartId}/add-book/{bookId} [post]
func (h *CartHandler) AddBook(c *gin.Context) {
	cartID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	bookID, err := parseUintParam(c, "bookId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.addBookUseCase.Execute(c.Request.Context(), cartID, bookID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, nil)
}

// DeleteCart 删除购物车
// @Summary      删除购物车
// @Description  返回删除前的购物车(含明细)
// @Tags         购物车
// @Produce      json
// @Param        id path int true "购物车ID"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      404 {object} response.Response "购物车不存在"
// @Router       /api/carts/{id} [delete]
func (h *CartHandler) DeleteCart(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.deleteCartUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
