package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod

	ReserveDelay  time.Duration // 売りの1段目（在庫引き当て）前の処理待ち
	RegisterDelay time.Duration // 売りの2段目（台帳登録）前の処理待ち
}

// 元の挙動に合わせたデフォルト（予約2秒・登録1秒）
const (
	defaultReserveDelayMS  = 2000
	defaultRegisterDelayMS = 1000
)

// Loadは環境変数
func Load() (Config, error) {
	reserveMS, err := atoiOrDefault("RESERVE_DELAY_MS", defaultReserveDelayMS)
	if err != nil {
		return Config{}, err
	}
	registerMS, err := atoiOrDefault("REGISTER_DELAY_MS", defaultRegisterDelayMS)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  os.Getenv("PORT"),
		GoEnv: os.Getenv("GO_ENV"),

		ReserveDelay:  time.Duration(reserveMS) * time.Millisecond,
		RegisterDelay: time.Duration(registerMS) * time.Millisecond,
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.ReserveDelay < 0 || cfg.RegisterDelay < 0 {
		return Config{}, fmt.Errorf("delays must be >= 0")
	}

	return cfg, nil
}

func atoiOrDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
