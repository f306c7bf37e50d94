package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookstore-manager/pkg/jwt"
	"github.com/xiebiao/bookstore-manager/pkg/logger"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	sessions := memory.NewSessionStore()
	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	auth := NewAuthMiddleware(jwtManager, sessions)

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "username": GetUsername(c)})
	})

	pair, err := jwtManager.GenerateToken(7, "alice")
	require.NoError(t, err)

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return serve(r, req)
	}

	t.Run("缺少Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("").Code)
	})

	t.Run("格式错误", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Token "+pair.AccessToken).Code)
	})

	t.Run("Refresh Token不能访问", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Bearer "+pair.RefreshToken).Code)
	})

	t.Run("认证通过", func(t *testing.T) {
		w := request("Bearer " + pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7,"username":"alice"}`, w.Body.String())
	})

	t.Run("黑名单中的Token", func(t *testing.T) {
		require.NoError(t, sessions.AddToBlacklist(context.Background(), pair.AccessToken, time.Hour))
		assert.Equal(t, http.StatusUnauthorized, request("Bearer "+pair.AccessToken).Code)
	})
}

// stubLimiter 前limit次放行
type stubLimiter struct {
	limit int
	count int
	err   error
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.count++
	return l.count <= l.limit, nil
}

func TestRateLimit(t *testing.T) {
	newEngine := func(limiter Limiter) *gin.Engine {
		r := gin.New()
		r.POST("/login", RateLimit(limiter, "login", logger.Nop()), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}
	login := func(r *gin.Engine) int {
		return serve(r, httptest.NewRequest(http.MethodPost, "/login", nil)).Code
	}

	t.Run("超过限制返回429", func(t *testing.T) {
		r := newEngine(&stubLimiter{limit: 2})
		assert.Equal(t, http.StatusOK, login(r))
		assert.Equal(t, http.StatusOK, login(r))
		assert.Equal(t, http.StatusTooManyRequests, login(r))
	})

	t.Run("限流器故障时放行", func(t *testing.T) {
		r := newEngine(&stubLimiter{err: errors.New("redis down")})
		assert.Equal(t, http.StatusOK, login(r))
	})

	t.Run("未配置限流器", func(t *testing.T) {
		var limiter Limiter
		assert.Equal(t, http.StatusOK, login(newEngine(limiter)))
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       600,
	}))
	r.GET("/categories", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("允许的Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := serve(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("预检请求", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/categories", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		assert.Equal(t, http.StatusNoContent, serve(r, req).Code)
	})

	t.Run("不允许的Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := serve(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":40104`)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("没有Origin不处理", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/categories", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("沿用上游请求ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := serve(r, req)
		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("生成新的请求ID", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	})
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/api/books/1", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil)).Code)
}

func TestMetrics_InProgressAfterPanic(t *testing.T) {
	r := gin.New()
	r.Use(gin.Recovery(), Metrics())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	inProgress := func() float64 {
		m := &dto.Metric{}
		require.NoError(t, metrics.HTTPRequestsInProgress.Write(m))
		return m.GetGauge().GetValue()
	}

	before := inProgress()
	assert.Equal(t, http.StatusInternalServerError, serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil)).Code)
	assert.Equal(t, before, inProgress())
}
