package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-manager/internal/application/book"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. Handler只负责HTTP相关的事情:解析请求、调用应用层、返回响应
// 2. 业务校验在domain层,存储与事件编排在application层
type BookHandler struct {
	getBookUseCase    *appbook.GetBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	saveBookUseCase   *appbook.SaveBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	getBookUseCase *appbook.GetBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	saveBookUseCase *appbook.SaveBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		getBookUseCase:    getBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		saveBookUseCase:   saveBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListPublishers 出版社列表
// @Summary      出版社列表
// @Description  返回去重并排序后的全部出版社
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]string}
// @Router       /api/books [get]
func (h *BookHandler) ListPublishers(c *gin.Context) {
	publishers, err := h.getBookUseCase.Publishers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, publishers)
}

// ListStatuses 图书状态枚举
// @Summary      图书状态枚举
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]string}
// @Router       /api/books/status [get]
func (h *BookHandler) ListStatuses(c *gin.Context) {
	response.Success(c, h.getBookUseCase.Statuses())
}

// ListBooks 分页查询图书
// @Summary      分页查询图书
// @Description  每页12条,页码从0开始;q非空时按书名模糊搜索
// @Tags         图书
// @Produce      json
// @Param        n  path  int     true  "页码(从0开始)"
// @Param        q  query string  false "书名关键词"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Failure      400 {object} response.Response "页码错误"
// @Router       /api/books/page/{n} [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	h.listBooks(c, "")
}

// ListBooksByPublisher 按出版社分页查询图书
// @Summary      按出版社分页查询图书
// @Tags         图书
// @Produce      json
// @Param        publisher path  string true  "出版社"
// @Param        n         path  int    true  "页码(从0开始)"
// @Param        q         query string false "书名关键词"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Failure      400 {object} response.Response "页码错误"
// @Router       /api/books/{publisher}/page/{n} [get]
func (h *BookHandler) ListBooksByPublisher(c *gin.Context) {
	// 与/api/books/:id共用同一个路径参数名
	publisher := c.Param("id")
	if publisher == "" {
		// 命中静态路由/page/page/:n，出版社名就是page
		publisher = "page"
	}
	h.listBooks(c, publisher)
}

func (h *BookHandler) listBooks(c *gin.Context, publisher string) {
	page, err := parsePage(c, "n")
	if err != nil {
		response.Error(c, err)
		return
	}

	var query dto.BookSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Query:     query.Q,
		Publisher: publisher,
		Page:      page,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SaveBook 新增图书
// @Summary      新增图书
// @Description  multipart表单,必须上传封面image
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Param        name        formData string true  "书名"
// @Param        category    formData int    false "分类ID"
// @Param        description formData string false "描述"
// @Param        status      formData string false "状态"
// @Param        publisher   formData string false "出版社"
// @Param        quantity    formData int    false "数量"
// @Param        image       formData file   true  "封面"
// @Success      201 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "未上传封面"
// @Router       /api/books [post]
func (h *BookHandler) SaveBook(c *gin.Context) {
	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		bindError(c, err)
		return
	}

	image, err := optionalFile(c, "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.saveBookUseCase.Execute(c.Request.Context(), appbook.SaveBookRequest{
		Name:        form.Name,
		CategoryID:  form.CategoryID,
		Description: form.Description,
		Status:      form.Status,
		Publisher:   form.Publisher,
		Quantity:    form.Quantity,
		Image:       image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  除封面外所有字段都会被覆盖;上传image时替换封面
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Param        id          path     int    true  "图书ID"
// @Param        name        formData string true  "书名"
// @Param        category    formData int    true  "分类ID"
// @Param        description formData string false "描述"
// @Param        status      formData string false "状态"
// @Param        publisher   formData string false "出版社"
// @Param        quantity    formData int    true  "数量(>=0)"
// @Param        image       formData file   false "新封面"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      422 {object} response.Response "字段校验失败"
// @Router       /api/books/{id} [post]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		bindError(c, err)
		return
	}

	image, err := optionalFile(c, "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:          id,
		Name:        form.Name,
		CategoryID:  form.CategoryID,
		Description: form.Description,
		Status:      form.Status,
		Publisher:   form.Publisher,
		Quantity:    form.Quantity,
		Image:       image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  返回删除前的图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.deleteBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
