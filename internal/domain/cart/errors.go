package cart

import (
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")

	// ErrInvalidPage 分页参数不合法
	ErrInvalidPage = apperrors.New(apperrors.ErrCodeInvalidParams, "分页参数不合法")
)
