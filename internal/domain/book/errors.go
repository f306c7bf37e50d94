package book

import (
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrImageRequired 创建图书必须上传封面
	ErrImageRequired = apperrors.New(apperrors.ErrCodeImageRequired, "请上传图书封面")

	// ErrInvalidPage 页码不合法
	ErrInvalidPage = apperrors.New(apperrors.ErrCodeInvalidParams, "页码不能为负数")

	// 更新校验失败(422)
	ErrQuantityNegative = apperrors.Validation("数量不能为负数")
	ErrNameRequired     = apperrors.Validation("图书名称不能为空")
	ErrCategoryRequired = apperrors.Validation("请选择图书分类")
	ErrCategoryNotExist = apperrors.Validation("图书分类不存在")
)
