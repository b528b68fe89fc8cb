package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カタログの永続化（読み取り・在庫増減）だけを約束。
// 商品の追加・削除は起動時のシードのみで、実行中は在庫だけが動く。
type CatalogRepository interface {
	// カタログ順で全件
	List(ctx context.Context) ([]model.Game, error)

	FindByCode(ctx context.Context, code string) (model.Game, error)

	// 在庫が1以上のときだけ1減らす。判定と減算は不可分に行う。
	// (false, nil) は在庫切れ、ErrNotFoundはcode不明。
	DecrementStockIfAvailable(ctx context.Context, code string) (bool, error)

	// 在庫戻し（キャンセルなど）
	IncrementStock(ctx context.Context, code string) error
}
