// Package application 用例层公共端口：事务与领域事件
package application

import (
	"context"
	"time"
)

// TxManager 事务管理器
// 实现：persistence/mysql.TxManager、persistence/memory.TxManager
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// 领域事件（routing key）
const (
	EventBookCreated   = "book.created"
	EventBookUpdated   = "book.updated"
	EventBookDeleted   = "book.deleted"
	EventCartBookAdded = "cart.book_added"
)

// Event 领域事件消息体
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewEvent 创建事件
func NewEvent(eventType string, payload interface{}) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
}

// EventPublisher 领域事件发布
// 用例只在业务操作成功后发布，发布失败不影响业务结果
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher 未启用消息队列时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
