package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookstore-manager/internal/application/category"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	listUseCase   *appcategory.ListCategoriesUseCase
	createUseCase *appcategory.CreateCategoryUseCase
	deleteUseCase *appcategory.DeleteCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	listUseCase *appcategory.ListCategoriesUseCase,
	createUseCase *appcategory.CreateCategoryUseCase,
	deleteUseCase *appcategory.DeleteCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]appcategory.CategoryResponse}
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类名称"
// @Success      201 {object} response.Response{data=appcategory.CategoryResponse}
// @Failure      409 {object} response.Response "名称重复"
// @Failure      422 {object} response.Response "名称为空"
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  同一事务中解除图书关联并删除分类
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=appcategory.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.deleteUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
