package messaging

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-manager/internal/application"
	"github.com/xiebiao/bookstore-manager/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-manager/pkg/metrics"
)

// Broker 消息发布底层接口（pkg/mq.Publisher）
type Broker interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventPublisher 领域事件发布者
// 设计说明：
// 1. 事件类型即routing key（book.created、cart.book_added）
// 2. 经过熔断器调用Broker，RabbitMQ不可用时快速失败，不拖慢HTTP请求
// 3. 熔断器状态变化同步到Prometheus
type EventPublisher struct {
	broker  Broker
	breaker *circuitbreaker.CircuitBreaker
	logger  *zerolog.Logger
}

var _ application.EventPublisher = (*EventPublisher)(nil)

// NewEventPublisher 创建事件发布者
func NewEventPublisher(broker Broker, breaker *circuitbreaker.CircuitBreaker, logger *zerolog.Logger) *EventPublisher {
	breaker.OnStateChange(func(name string, from, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
		logger.Warn().
			Str("breaker", name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("熔断器状态变化")
	})

	return &EventPublisher{
		broker:  broker,
		breaker: breaker,
		logger:  logger,
	}
}

// Publish 发布事件
func (p *EventPublisher) Publish(ctx context.Context, event application.Event) error {
	err := p.breaker.Execute(func() error {
		return p.broker.Publish(ctx, event.Type, event)
	})

	switch {
	case err == nil:
		metrics.RecordPublish(event.Type, "success")
	case errors.Is(err, circuitbreaker.ErrOpenState):
		metrics.RecordPublish(event.Type, "rejected")
	default:
		metrics.RecordPublish(event.Type, "failure")
	}
	return err
}
