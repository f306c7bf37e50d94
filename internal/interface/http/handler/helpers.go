package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// parseUintParam 解析路径参数中的ID
// 0是合法数字，交给仓储返回对应的不存在错误
func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的"+name)
	}
	return uint(v), nil
}

// parsePage 解析页码（从0开始）
func parsePage(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的页码")
	}
	return v, nil
}

// optionalFile 读取可选的上传文件，未上传返回nil
func optionalFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.New(apperrors.ErrCodeBindError, "读取上传文件失败")
	}
	return fh, nil
}

// bindError 参数绑定失败
func bindError(c *gin.Context, err error) {
	response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
}
