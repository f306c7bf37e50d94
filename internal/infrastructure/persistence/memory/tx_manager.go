package memory

import (
	"context"
	"sync"
)

// TxManager 内存事务管理器
// 只保证fn串行执行，不支持回滚
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager 创建内存事务管理器
func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
