package usecase

import (
	"sync"

	"go.uber.org/zap"
)

// 現在の検索語を1つだけ持つ。書き込みはSetSearchのみ。
type SearchUsecase struct {
	mu     sync.RWMutex
	term   string
	logger *zap.Logger
}

// DI
func NewSearchUsecase(logger *zap.Logger) *SearchUsecase {
	return &SearchUsecase{logger: logger}
}

// string以外（JSON経由で数値やnullが来るケース）は捨てて、現在の検索語は変えない。
// エラーにはしない。診断ログだけ残す。
func (u *SearchUsecase) SetSearch(value any) {
	s, ok := value.(string)
	if !ok {
		u.logger.Warn("search term must be a string, input dropped",
			zap.Any("value", value),
		)
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.term = s
}

// 現在の検索語。空文字は「検索なし」。
func (u *SearchUsecase) Term() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.term
}
