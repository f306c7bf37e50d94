package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestError_StatusMapping(t *testing.T) {
	t.Run("NotFound映射为404", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) {
			Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在"))
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, body.Code)
		assert.Equal(t, "图书不存在", body.Message)
	})

	t.Run("ValidationFailed映射为422", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) {
			Error(c, apperrors.Validation("数量不能为负数"))
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "数量不能为负数", body.Message)
	})

	t.Run("未知错误不泄露内部信息", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) {
			Error(c, errors.New("dial tcp 10.0.0.1:3306: connection refused"))
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "系统内部错误", body.Message)
	})
}

func TestCreated(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, body.Code)
}

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		pageSize  int
		wantPages int
	}{
		{"不足一页", 5, 12, 1},
		{"整除", 24, 12, 2},
		{"有余数", 25, 12, 3},
		{"没有数据", 0, 12, 0},
		{"页大小为0", 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPageMeta(tc.total, 1, tc.pageSize)
			assert.Equal(t, tc.wantPages, meta.TotalPages)
			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, 1, meta.Page)
		})
	}
}
