package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 処理待ちを模す約束。本番はtime.Sleep、テストでは即時。
type Sleeper interface {
	Sleep(d time.Duration)
}

// 1件の売り注文が通る状態。Initiated→Reserving→(Reserved|Skipped)→Registering→Completed
type SaleState string

const (
	SaleStateInitiated   SaleState = "initiated"
	SaleStateReserving   SaleState = "reserving"
	SaleStateReserved    SaleState = "reserved"
	SaleStateSkipped     SaleState = "skipped"
	SaleStateRegistering SaleState = "registering"
	SaleStateCompleted   SaleState = "completed"
)

// 売り注文の入力。売れた時点のスナップショットとして台帳にそのまま写す。
// Stockは受け取らない（台帳に在庫値は載せない）。
type SellGameInput struct {
	Code     string
	Name     string
	Price    int64
	Color    string
	Featured bool
	ImageURL string
}

type SellGameOutput struct {
	Sale    model.Sale        `json:"sale"`
	Outcome model.SaleOutcome `json:"outcome"`
}

// 売りの2段階パイプライン。
// 1段目（予約）: 遅延のあと、その時点の在庫で判定して引き当てる。
// 2段目（登録）: 遅延のあと、引き当ての成否に関わらず台帳へ追記する。
// 元の仕様どおり、在庫切れでも記録は残る。代わりにOutcomeで区別できるようにしてある。
type SaleUsecase struct {
	catalog repo.CatalogRepository
	ledger  repo.SalesLedgerRepository
	idGen   IDGenerator
	clock   Clock
	sleeper Sleeper
	logger  *zap.Logger

	reserveDelay  time.Duration
	registerDelay time.Duration
}

// DI
func NewSaleUsecase(
	catalog repo.CatalogRepository,
	ledger repo.SalesLedgerRepository,
	idGen IDGenerator,
	clock Clock,
	sleeper Sleeper,
	logger *zap.Logger,
	reserveDelay time.Duration,
	registerDelay time.Duration,
) *SaleUsecase {
	return &SaleUsecase{
		catalog:       catalog,
		ledger:        ledger,
		idGen:         idGen,
		clock:         clock,
		sleeper:       sleeper,
		logger:        logger,
		reserveDelay:  reserveDelay,
		registerDelay: registerDelay,
	}
}

// 売り注文を最後まで処理する。2段階を必ず順に通り、両方終わってから返る。
// 一度始まった注文は中断しない（ctxはリポジトリへ渡すだけで、遅延は打ち切らない）。
// 在庫切れ・code不明は失敗ではない。エラーになるのはcodeが空のときだけ。
func (u *SaleUsecase) SellGame(ctx context.Context, in SellGameInput) (SellGameOutput, error) {
	if strings.TrimSpace(in.Code) == "" {
		return SellGameOutput{}, NewHTTPError(http.StatusBadRequest, "code required")
	}

	u.logState(in.Code, SaleStateInitiated)

	outcome := u.processSale(ctx, in.Code)

	sale, err := u.registerSale(ctx, in, outcome)
	if err != nil {
		return SellGameOutput{}, NewHTTPError(http.StatusInternalServerError, "ledger error")
	}

	u.logState(in.Code, SaleStateCompleted)

	return SellGameOutput{
		Sale:    sale,
		Outcome: outcome,
	}, nil
}

// 1段目: 在庫の引き当て。
// 判定は遅延が明けた時点のカタログに対して行う（注文時点のスナップショットではない）。
// 遅延の間に他の注文が同じ商品の在庫を減らしているかもしれないので、
// 判定と減算はカタログ側でロックの中で不可分に行われる。
func (u *SaleUsecase) processSale(ctx context.Context, code string) model.SaleOutcome {
	u.logState(code, SaleStateReserving)
	u.sleeper.Sleep(u.reserveDelay)

	decremented, err := u.catalog.DecrementStockIfAvailable(ctx, code)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		u.logState(code, SaleStateSkipped)
		return model.SaleOutcomeNotFound
	case err != nil:
		// インメモリ実装では起きないが、引き当て失敗は在庫切れと同じ扱いで先へ進める
		u.logger.Error("stock reservation failed", zap.String("code", code), zap.Error(err))
		u.logState(code, SaleStateSkipped)
		return model.SaleOutcomeOutOfStock
	case !decremented:
		u.logState(code, SaleStateSkipped)
		return model.SaleOutcomeOutOfStock
	}

	u.logState(code, SaleStateReserved)
	return model.SaleOutcomeFulfilled
}

// 2段目: 台帳への登録。引き当ての成否に関わらず必ず追記する。
// 記録するのは注文に載ってきたスナップショットで、カタログを引き直さない。
func (u *SaleUsecase) registerSale(ctx context.Context, in SellGameInput, outcome model.SaleOutcome) (model.Sale, error) {
	u.logState(in.Code, SaleStateRegistering)
	u.sleeper.Sleep(u.registerDelay)

	sale := model.Sale{
		ID:         u.idGen.NewID(),
		Code:       in.Code,
		Name:       in.Name,
		Price:      in.Price,
		Color:      in.Color,
		Featured:   in.Featured,
		ImageURL:   in.ImageURL,
		Outcome:    outcome,
		RecordedAt: u.clock.Now(),
	}
	if err := u.ledger.Append(ctx, sale); err != nil {
		return model.Sale{}, err
	}
	return sale, nil
}

func (u *SaleUsecase) logState(code string, state SaleState) {
	u.logger.Info("sale state",
		zap.String("code", code),
		zap.String("state", string(state)),
	)
}
