package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CoinQuote is a snapshot of one coin's market data.
type CoinQuote struct {
	CoinID           string
	Symbol           string
	Name             string
	Price            decimal.Decimal
	ChangePercent24h decimal.Decimal
	Volume24h        decimal.Decimal
	MarketCap        decimal.Decimal
	Image            string
}

// CoinMatch is a search hit for a coin lookup query.
type CoinMatch struct {
	CoinID        string
	Name          string
	Symbol        string
	MarketCapRank int
	Thumb         string
}

// ChartPoint is one sample of a historic series.
type ChartPoint struct {
	Time  time.Time
	Value float64
}

// MarketChart holds historic price and volume series for one coin.
type MarketChart struct {
	Prices  []ChartPoint
	Volumes []ChartPoint
}

// MarketClient fetches market data for tracked coins.
type MarketClient interface {
	// Quotes returns current data for the given coin ids in a single batched
	// request. An empty id set returns an empty map without a network call.
	// A coin missing from the upstream response is simply absent from the
	// result; only total failure returns an error.
	Quotes(ctx context.Context, coinIDs []string) (map[string]CoinQuote, error)
	TopCoins(ctx context.Context, limit int) ([]CoinQuote, error)
	Search(ctx context.Context, query string) ([]CoinMatch, error)
	MarketChart(ctx context.Context, coinID string, days int) (*MarketChart, error)
}
