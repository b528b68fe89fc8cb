package repository

import (
	"context"
	"fmt"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// カタログのインメモリ実装。
// スライスでカタログ順を保ち、code→indexのmapで引く。
// 判定と減算を同じロックの中で行うので、並行の売り注文でも在庫がマイナスにならない。
type CatalogMemoryRepository struct {
	mu    sync.RWMutex
	games []model.Game
	index map[string]int
}

// シードを受け取って構築。codeの重複はここで弾く（起動時のみ）。
func NewCatalogMemoryRepository(seed []model.Game) (*CatalogMemoryRepository, error) {
	r := &CatalogMemoryRepository{
		games: make([]model.Game, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	copy(r.games, seed)

	for i, g := range r.games {
		if g.Code == "" {
			return nil, fmt.Errorf("seed game %d: code required", i)
		}
		if g.Stock < 0 {
			return nil, fmt.Errorf("seed game %q: stock must be >= 0", g.Code)
		}
		if g.Price < 0 {
			return nil, fmt.Errorf("seed game %q: price must be >= 0", g.Code)
		}
		if _, dup := r.index[g.Code]; dup {
			return nil, fmt.Errorf("seed game %q: duplicate code", g.Code)
		}
		r.index[g.Code] = i
	}
	return r, nil
}

// カタログ順で全件（コピーを返す）
func (r *CatalogMemoryRepository) List(ctx context.Context) ([]model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Game, len(r.games))
	copy(out, r.games)
	return out, nil
}

func (r *CatalogMemoryRepository) FindByCode(ctx context.Context, code string) (model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[code]
	if !ok {
		return model.Game{}, repo.ErrNotFound
	}
	return r.games[i], nil
}

// 在庫が1以上のときだけ1減らす
func (r *CatalogMemoryRepository) DecrementStockIfAvailable(ctx context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[code]
	if !ok {
		return false, repo.ErrNotFound
	}
	if r.games[i].Stock <= 0 {
		return false, nil
	}
	r.games[i].Stock--
	return true, nil
}

// 在庫戻し
func (r *CatalogMemoryRepository) IncrementStock(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[code]
	if !ok {
		return repo.ErrNotFound
	}
	r.games[i].Stock++
	return nil
}
