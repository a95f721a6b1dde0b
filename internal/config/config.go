package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	DBPath string `env:"DB_PATH,default=coinsentry.db"`

	CoinGeckoBaseURL string        `env:"COINGECKO_BASE_URL,default=https://api.coingecko.com/api/v3"`
	CoinGeckoAPIKey  string        `env:"COINGECKO_API_KEY"`
	CoinGeckoTimeout time.Duration `env:"COINGECKO_TIMEOUT,default=10s"`

	TopCoinsLimit int    `env:"TOP_COINS_LIMIT,default=100"`
	LogLevel      string `env:"LOG_LEVEL,default=info"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
