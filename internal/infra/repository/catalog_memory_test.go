package repository_test

import (
	"context"
	"sync"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, seed []model.Game) *infraRepo.CatalogMemoryRepository {
	t.Helper()
	r, err := infraRepo.NewCatalogMemoryRepository(seed)
	require.NoError(t, err)
	return r
}

func TestCatalogMemory_SeedValidation(t *testing.T) {
	_, err := infraRepo.NewCatalogMemoryRepository([]model.Game{
		{Code: "0001", Name: "A", Stock: 1},
		{Code: "0001", Name: "B", Stock: 1},
	})
	assert.Error(t, err) // codeの重複

	_, err = infraRepo.NewCatalogMemoryRepository([]model.Game{
		{Code: "", Name: "A"},
	})
	assert.Error(t, err) // code必須

	_, err = infraRepo.NewCatalogMemoryRepository([]model.Game{
		{Code: "0001", Name: "A", Stock: -1},
	})
	assert.Error(t, err) // 在庫は0以上
}

func TestCatalogMemory_ListKeepsSeedOrder(t *testing.T) {
	r := newCatalog(t, []model.Game{
		{Code: "0002", Name: "B", Stock: 1},
		{Code: "0001", Name: "A", Stock: 1},
	})

	games, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "0002", games[0].Code)
	assert.Equal(t, "0001", games[1].Code)
}

func TestCatalogMemory_FindByCode_NotFound(t *testing.T) {
	r := newCatalog(t, []model.Game{{Code: "0001", Name: "A", Stock: 1}})

	_, err := r.FindByCode(context.Background(), "9999")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogMemory_DecrementStockIfAvailable(t *testing.T) {
	r := newCatalog(t, []model.Game{{Code: "0001", Name: "A", Stock: 1}})
	ctx := context.Background()

	ok, err := r.DecrementStockIfAvailable(ctx, "0001")
	require.NoError(t, err)
	assert.True(t, ok)

	// 在庫0からは減らない
	ok, err = r.DecrementStockIfAvailable(ctx, "0001")
	require.NoError(t, err)
	assert.False(t, ok)

	g, err := r.FindByCode(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.Stock)

	_, err = r.DecrementStockIfAvailable(ctx, "9999")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogMemory_IncrementStock(t *testing.T) {
	r := newCatalog(t, []model.Game{{Code: "0001", Name: "A", Stock: 0}})
	ctx := context.Background()

	require.NoError(t, r.IncrementStock(ctx, "0001"))
	g, err := r.FindByCode(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.Stock)

	assert.ErrorIs(t, r.IncrementStock(ctx, "9999"), repo.ErrNotFound)
}

// Listが返すスライスを書き換えてもカタログ本体は変わらない
func TestCatalogMemory_ListReturnsCopy(t *testing.T) {
	r := newCatalog(t, []model.Game{{Code: "0001", Name: "A", Stock: 3}})
	ctx := context.Background()

	games, err := r.List(ctx)
	require.NoError(t, err)
	games[0].Stock = 999

	g, err := r.FindByCode(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), g.Stock)
}

// 同時に大量の引き当てをかけても、成功数は在庫数を超えず、在庫はマイナスにならない
func TestCatalogMemory_ConcurrentDecrements(t *testing.T) {
	const stock = 5
	const attempts = 50

	r := newCatalog(t, []model.Game{{Code: "0001", Name: "A", Stock: stock}})
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := r.DecrementStockIfAvailable(ctx, "0001")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, stock, succeeded)

	g, err := r.FindByCode(ctx, "0001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.Stock)
}
