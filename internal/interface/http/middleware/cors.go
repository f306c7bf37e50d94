package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// CORS 跨域资源共享中间件
//
// 1. Origin不在允许列表中返回403
// 2. 预检请求（OPTIONS）直接返回204
// 3. allow_credentials=true时回写具体Origin而不是"*"
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		allowOrigin := ""
		for _, o := range cfg.AllowOrigins {
			if o == "*" || o == origin {
				allowOrigin = o
				break
			}
		}
		if allowOrigin == "" {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		if allowOrigin == "*" && cfg.AllowCredentials {
			allowOrigin = origin
		}

		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Expose-Headers", HeaderRequestID)
		if allowOrigin != "*" {
			c.Header("Vary", "Origin")
		}
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
