package main

import (
	"time"

	"app/internal/config"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type realSleeper struct{}

func (s *realSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

func main() {
	//.envが無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//Logger生成（prodはJSON、それ以外はconsole）
	var logger *zap.Logger
	if cfg.GoEnv == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//Repository（インメモリ実装）生成
	catalogRepo, err := infraRepo.NewCatalogMemoryRepository(infraRepo.SeedGames())
	if err != nil {
		panic(err)
	}
	ledgerRepo := infraRepo.NewLedgerMemoryRepository()

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	sleeper := &realSleeper{}

	//Usecase生成
	queryUC := usecase.NewQueryUsecase(catalogRepo, ledgerRepo)
	searchUC := usecase.NewSearchUsecase(logger)
	saleUC := usecase.NewSaleUsecase(catalogRepo, ledgerRepo, idGen, clock, sleeper, logger, cfg.ReserveDelay, cfg.RegisterDelay)

	//Handler生成
	catalogH := handler.NewCatalogHandler(queryUC, searchUC)
	saleH := handler.NewSaleHandler(saleUC, queryUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("server starting", zap.String("addr", addr))
	if err := server.Start(addr, catalogH, saleH); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
