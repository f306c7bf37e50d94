// Package logger 基于zerolog的结构化日志
//
// 设计说明：
// 1. 由配置决定级别（debug/info/warn/error）、格式（console/json）、输出位置
// 2. New返回的Logger同时设置为zerolog全局Logger，pkg/response等无依赖注入的位置直接使用log包
// 3. 业务代码优先通过构造函数注入*zerolog.Logger
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config 日志配置
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// New 创建Logger并设置为全局Logger
func New(cfg Config) (*zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	w, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()

	zerolog.SetGlobalLevel(level)
	log.Logger = l
	return &l, nil
}

// Nop 返回丢弃所有输出的Logger（测试使用）
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("无效的日志级别: %s", s)
	}
	return level, nil
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, nil
	}
}
