// Package saga 带补偿的多步操作
//
// 跨越多个资源（文件系统 + 数据库）的写操作无法放进同一个数据库事务，
// 按顺序执行各步骤，某步失败时逆序执行已完成步骤的补偿操作。
//
// 典型用法（保存图书）：
//
//	s := saga.New(logger)
//	s.AddStep("store-image", storeImage, removeImage)
//	s.AddStep("persist-book", persistBook, nil)
//	if err := s.Execute(ctx); err != nil { ... }
package saga

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Step 一个步骤：正向操作及其补偿（补偿可以为nil）
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga 一次性执行器，不可复用
type Saga struct {
	steps    []Step
	executed []Step
	logger   *zerolog.Logger
}

// New 创建Saga
func New(logger *zerolog.Logger) *Saga {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Saga{logger: logger}
}

// AddStep 追加步骤
func (s *Saga) AddStep(name string, action, compensate func(ctx context.Context) error) *Saga {
	s.steps = append(s.steps, Step{
		Name:       name,
		Action:     action,
		Compensate: compensate,
	})
	return s
}

// Execute 顺序执行所有步骤
//
// 返回的错误包装了失败步骤的原始错误，可以用errors.As取出业务错误
func (s *Saga) Execute(ctx context.Context) error {
	for _, step := range s.steps {
		if err := ctx.Err(); err != nil {
			s.compensate(context.WithoutCancel(ctx))
			return fmt.Errorf("步骤[%s]执行前已取消: %w", step.Name, err)
		}

		if step.Action != nil {
			if err := step.Action(ctx); err != nil {
				// 补偿不受原ctx取消影响
				s.compensate(context.WithoutCancel(ctx))
				return fmt.Errorf("步骤[%s]执行失败: %w", step.Name, err)
			}
		}
		s.executed = append(s.executed, step)
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context) {
	for i := len(s.executed) - 1; i >= 0; i-- {
		step := s.executed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.logger.Error().Err(err).Str("step", step.Name).Msg("补偿失败")
		}
	}
	s.executed = nil
}
