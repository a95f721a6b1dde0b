package usecase

import (
	"context"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/coinsentry/coinsentry/internal/indicator"
)

const (
	indicatorHistoryDays = 30
	volumeSpikeThreshold = 2.0
)

// Indicators is the technical summary computed for one coin.
type Indicators struct {
	SMA20         float64
	SMA50         float64
	HasSMA20      bool
	HasSMA50      bool
	RSI           float64
	HasRSI        bool
	VolumeSpike   bool
	CurrentPrice  float64
	PriceAboveS20 bool
	PriceAboveS50 bool
}

type MarketUsecase struct {
	market domain.MarketClient
}

func NewMarketUsecase(market domain.MarketClient) *MarketUsecase {
	return &MarketUsecase{market: market}
}

func (u *MarketUsecase) TopCoins(ctx context.Context, limit int) ([]domain.CoinQuote, error) {
	return u.market.TopCoins(ctx, limit)
}

func (u *MarketUsecase) SearchCoins(ctx context.Context, query string) ([]domain.CoinMatch, error) {
	return u.market.Search(ctx, query)
}

// TechnicalIndicators computes SMA, RSI and volume spike detection over the
// recent price history of one coin.
func (u *MarketUsecase) TechnicalIndicators(ctx context.Context, coinID string) (*Indicators, error) {
	chart, err := u.market.MarketChart(ctx, coinID, indicatorHistoryDays)
	if err != nil {
		return nil, err
	}

	prices := make([]float64, 0, len(chart.Prices))
	for _, point := range chart.Prices {
		prices = append(prices, point.Value)
	}
	volumes := make([]float64, 0, len(chart.Volumes))
	for _, point := range chart.Volumes {
		volumes = append(volumes, point.Value)
	}

	result := &Indicators{
		VolumeSpike: indicator.VolumeSpike(volumes, volumeSpikeThreshold),
	}
	if len(prices) > 0 {
		result.CurrentPrice = prices[len(prices)-1]
	}
	result.SMA20, result.HasSMA20 = indicator.SMA(prices, 20)
	result.SMA50, result.HasSMA50 = indicator.SMA(prices, 50)
	result.RSI, result.HasRSI = indicator.RSI(prices, 14)
	result.PriceAboveS20 = result.HasSMA20 && result.CurrentPrice > result.SMA20
	result.PriceAboveS50 = result.HasSMA50 && result.CurrentPrice > result.SMA50
	return result, nil
}
