package model

import "time"

// 予約（在庫引き当て）の結果
type SaleOutcome string

const (
	SaleOutcomeFulfilled  SaleOutcome = "fulfilled"    // 在庫を1つ引き当てた
	SaleOutcomeOutOfStock SaleOutcome = "out_of_stock" // 在庫0のためスキップ
	SaleOutcomeNotFound   SaleOutcome = "not_found"    // codeがカタログに無い
)

// 販売記録。売れた時点の商品スナップショット。
// Stockは意図的に持たない（台帳は「何が売れたか」を記録する。後から変わる在庫値は記録しない）。
type Sale struct {
	ID         string      `json:"id"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	Price      int64       `json:"price"`
	Color      string      `json:"color"`
	Featured   bool        `json:"featured"`
	ImageURL   string      `json:"image_url"`
	Outcome    SaleOutcome `json:"outcome"`
	RecordedAt time.Time   `json:"recorded_at"`
}
