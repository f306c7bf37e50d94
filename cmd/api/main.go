package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "github.com/xiebiao/bookstore-manager/docs"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
)

// @title           Bookstore Manager API
// @version         1.0
// @description     图书管理后台：图书、购物车、分类、用户
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("初始化应用失败")
	}
	defer cleanup()

	cfg := app.Config
	logger := app.Logger

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("mode", cfg.Server.Mode).
			Str("database", cfg.Database.Driver).
			Bool("redis", cfg.Redis.Enabled).
			Bool("mq", cfg.MQ.Enabled).
			Msg("服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("启动服务失败")
		}
	}()

	// 优雅关闭：等待处理中的请求完成
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("服务关闭超时")
	}
	if err := app.ShutdownTracer(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("关闭Tracer失败")
	}
	logger.Info().Msg("服务已退出")
}
