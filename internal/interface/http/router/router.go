package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-manager/pkg/response"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	Book     *handler.BookHandler
	Cart     *handler.CartHandler
	Category *handler.CategoryHandler
	User     *handler.UserHandler
}

// New 创建Gin引擎并注册路由
//
// 中间件顺序：Recovery → Tracing → RequestLogger → Metrics → CORS
// limiter为nil时登录/注册不限流
func New(
	cfg *config.Config,
	logger *zerolog.Logger,
	h Handlers,
	auth *middleware.AuthMiddleware,
	limiter middleware.Limiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	r.Use(middleware.RequestLogger(logger))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.CORS(cfg.CORS))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")

	// 图书模块
	// 同一位置的路径参数必须同名，/:id/page/:n 中的 :id 是出版社
	// 静态的/page/:n优先匹配，名为page的出版社需要单独注册
	books := api.Group("/books")
	{
		books.GET("", h.Book.ListPublishers)
		books.GET("/status", h.Book.ListStatuses)
		books.GET("/page/:n", h.Book.ListBooks)
		books.GET("/page/page/:n", h.Book.ListBooksByPublisher)
		books.GET("/:id/page/:n", h.Book.ListBooksByPublisher)
		books.GET("/:id", h.Book.GetBook)
		books.POST("", h.Book.SaveBook)
		books.POST("/:id", h.Book.UpdateBook)
		books.DELETE("/:id", h.Book.DeleteBook)
	}

	// 购物车模块
	carts := api.Group("/carts")
	{
		carts.GET("", h.Cart.ListCarts)
		carts.POST("", h.Cart.CreateCart)
		carts.GET("/:id", h.Cart.ListCartBooks)
		carts.POST("/:id/add-book/:bookId", h.Cart.AddBook)
		carts.DELETE("/:id", h.Cart.DeleteCart)
	}

	// 用户模块
	users := api.Group("/users")
	{
		users.POST("/register", middleware.RateLimit(limiter, "register", logger), h.User.Register)
		users.POST("/login", middleware.RateLimit(limiter, "login", logger), h.User.Login)
		users.POST("/refresh", h.User.Refresh)

		authorized := users.Group("")
		authorized.Use(auth.RequireAuth())
		{
			authorized.POST("/logout", h.User.Logout)
			authorized.GET("/me", h.User.Profile)
		}
	}

	// 分类模块（不在/api前缀下）
	categories := r.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.POST("", h.Category.CreateCategory)
		categories.DELETE("/:id", h.Category.DeleteCategory)
	}

	return r
}
