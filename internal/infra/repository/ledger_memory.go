package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
)

// 販売台帳のインメモリ実装。追記のみ。
type LedgerMemoryRepository struct {
	mu    sync.RWMutex
	sales []model.Sale
}

func NewLedgerMemoryRepository() *LedgerMemoryRepository {
	return &LedgerMemoryRepository{}
}

func (r *LedgerMemoryRepository) Append(ctx context.Context, sale model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, sale)
	return nil
}

// 追記順で全件（コピーを返す）
func (r *LedgerMemoryRepository) List(ctx context.Context) ([]model.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}
