package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カタログと台帳の読み取り専用ビュー。
// 毎回その場で計算する（キャッシュしない）。書き込み直後の読み取りが古い値を返さないように。
type QueryUsecase struct {
	catalog repo.CatalogRepository
	ledger  repo.SalesLedgerRepository
}

// DI
func NewQueryUsecase(catalog repo.CatalogRepository, ledger repo.SalesLedgerRepository) *QueryUsecase {
	return &QueryUsecase{
		catalog: catalog,
		ledger:  ledger,
	}
}

// カタログ全件（カタログ順）
func (u *QueryUsecase) Games(ctx context.Context) ([]model.Game, error) {
	return u.catalog.List(ctx)
}

// 全商品の在庫数の合計
func (u *QueryUsecase) StockTotal(ctx context.Context) (int64, error) {
	games, err := u.catalog.List(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, g := range games {
		total += g.Stock
	}
	return total, nil
}

// 名前の部分一致検索（大文字小文字は区別しない）。カタログ順を保つ。
// termが空のときは空を返す。「検索していない＝結果なし」であって「全件」ではない。
func (u *QueryUsecase) SearchGames(ctx context.Context, term string) ([]model.Game, error) {
	if term == "" {
		return []model.Game{}, nil
	}

	games, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(term)
	out := []model.Game{}
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Name), lowered) {
			out = append(out, g)
		}
	}
	return out, nil
}

// 在庫が1以上の商品。カタログ順を保つ。
func (u *QueryUsecase) InStockGames(ctx context.Context) ([]model.Game, error) {
	games, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	out := []model.Game{}
	for _, g := range games {
		if g.Stock > 0 {
			out = append(out, g)
		}
	}
	return out, nil
}

func (u *QueryUsecase) InStockCount(ctx context.Context) (int, error) {
	games, err := u.InStockGames(ctx)
	if err != nil {
		return 0, err
	}
	return len(games), nil
}

// 台帳の全記録（追記順）
func (u *QueryUsecase) Sales(ctx context.Context) ([]model.Sale, error) {
	return u.ledger.List(ctx)
}

// 台帳の全記録の売上合計。引き当てできなかった記録も含めて足す（台帳に載った額の総和）。
func (u *QueryUsecase) TotalRevenue(ctx context.Context) (int64, error) {
	sales, err := u.ledger.List(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, s := range sales {
		total += s.Price
	}
	return total, nil
}
