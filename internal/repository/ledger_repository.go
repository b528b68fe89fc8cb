package repository

import (
	"app/internal/domain/model"
	"context"
)

// 販売台帳。追記のみ（更新・削除なし）。
type SalesLedgerRepository interface {
	// 台帳の末尾に追記する。追記順＝登録完了順。
	Append(ctx context.Context, sale model.Sale) error

	// 追記順で全件
	List(ctx context.Context) ([]model.Sale, error)
}
