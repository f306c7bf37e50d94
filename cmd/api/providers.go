package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
	"github.com/xiebiao/bookstore-manager/internal/domain/user"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/storage"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/router"
	"github.com/xiebiao/bookstore-manager/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-manager/pkg/jwt"
	"github.com/xiebiao/bookstore-manager/pkg/logger"
	"github.com/xiebiao/bookstore-manager/pkg/mq"
	"github.com/xiebiao/bookstore-manager/pkg/tracing"
)

// App 应用入口需要的全部对象
type App struct {
	Config         *config.Config
	Engine         *gin.Engine
	Logger         *zerolog.Logger
	ShutdownTracer tracing.ShutdownFunc
}

// repositories 按database.driver选择的仓储实现
type repositories struct {
	Books      book.Repository
	Categories category.Repository
	Carts      cart.Repository
	Users      user.Repository
	Tx         application.TxManager
}

func provideLogger(cfg *config.Config) (*zerolog.Logger, error) {
	return logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideRepositories driver=memory时使用内存仓储（本地开发、演示）
func provideRepositories(cfg *config.Config, log *zerolog.Logger) (*repositories, func(), error) {
	if cfg.Database.Driver == "memory" {
		log.Warn().Msg("使用内存仓储，重启后数据丢失")
		categories := memory.NewCategoryRepository()
		carts := memory.NewCartRepository()
		return &repositories{
			Books:      memory.NewBookRepository(categories, carts),
			Categories: categories,
			Carts:      carts,
			Users:      memory.NewUserRepository(),
			Tx:         memory.NewTxManager(),
		}, func() {}, nil
	}

	db, err := mysql.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return &repositories{
		Books:      mysql.NewBookRepository(db),
		Categories: mysql.NewCategoryRepository(db),
		Carts:      mysql.NewCartRepository(db),
		Users:      mysql.NewUserRepository(db),
		Tx:         mysql.NewTxManager(db),
	}, cleanup, nil
}

// provideRedisClient redis.enabled=false时返回nil
func provideRedisClient(cfg *config.Config, log *zerolog.Logger) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

// provideSessionStore 未启用Redis时使用内存会话
func provideSessionStore(client *goredis.Client) user.SessionStore {
	if client == nil {
		return memory.NewSessionStore()
	}
	return redis.NewSessionStore(client)
}

// provideBookCache 未启用缓存时返回nil接口，领域服务降级为直接查库
func provideBookCache(cfg *config.Config, client *goredis.Client) book.Cache {
	if !cfg.Cache.Enabled || client == nil {
		return nil
	}
	return redis.NewBookCache(client, cfg.Cache.DetailTTL, cfg.Cache.PublishersTTL)
}

// provideRateLimiter 未启用限流时返回nil接口
func provideRateLimiter(cfg *config.Config, client *goredis.Client) middleware.Limiter {
	if !cfg.RateLimit.Enabled || client == nil {
		return nil
	}
	return redis.NewRateLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Period)
}

// provideEventPublisher mq.enabled=false时事件被丢弃
func provideEventPublisher(cfg *config.Config, log *zerolog.Logger) (application.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return application.NopPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic", log)
	if err != nil {
		return nil, nil, err
	}
	breaker := circuitbreaker.NewCircuitBreaker("rabbitmq", circuitbreaker.DefaultConfig())
	return messaging.NewEventPublisher(publisher, breaker, log), func() { publisher.Close() }, nil
}

func provideImageStorage(cfg *config.Config, log *zerolog.Logger) (*storage.ImageStorage, error) {
	return storage.NewImageStorage(afero.NewOsFs(), cfg.Upload.Path, cfg.Upload.MaxSize, log)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideCategoryChecker(s category.Service) book.CategoryChecker {
	return s
}

// provideTracer tracing.enabled=false时不导出Span
func provideTracer(cfg *config.Config) (tracing.ShutdownFunc, error) {
	if !cfg.Tracing.Enabled {
		return tracing.NoopShutdown, nil
	}
	return tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
}

func provideEngine(
	cfg *config.Config,
	log *zerolog.Logger,
	handlers router.Handlers,
	auth *middleware.AuthMiddleware,
	limiter middleware.Limiter,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	return router.New(cfg, log, handlers, auth, limiter)
}
