package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketClient struct {
	fakeQuoteSource
	top    []domain.CoinQuote
	search []domain.CoinMatch
	chart  *domain.MarketChart
}

func (f *fakeMarketClient) TopCoins(ctx context.Context, limit int) ([]domain.CoinQuote, error) {
	if limit < len(f.top) {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeMarketClient) Search(ctx context.Context, query string) ([]domain.CoinMatch, error) {
	return f.search, nil
}

func (f *fakeMarketClient) MarketChart(ctx context.Context, coinID string, days int) (*domain.MarketChart, error) {
	return f.chart, nil
}

func chartFrom(prices, volumes []float64) *domain.MarketChart {
	chart := &domain.MarketChart{}
	base := time.Unix(0, 0).UTC()
	for i, price := range prices {
		chart.Prices = append(chart.Prices, domain.ChartPoint{Time: base.Add(time.Duration(i) * time.Hour), Value: price})
	}
	for i, volume := range volumes {
		chart.Volumes = append(chart.Volumes, domain.ChartPoint{Time: base.Add(time.Duration(i) * time.Hour), Value: volume})
	}
	return chart
}

func TestTechnicalIndicatorsComputesSummary(t *testing.T) {
	prices := make([]float64, 0, 60)
	for i := range 60 {
		prices = append(prices, 100+float64(i)) // steadily rising
	}
	volumes := []float64{100, 100, 100, 500}

	client := &fakeMarketClient{chart: chartFrom(prices, volumes)}
	uc := NewMarketUsecase(client)

	indicators, err := uc.TechnicalIndicators(t.Context(), "bitcoin")
	require.NoError(t, err)

	assert.True(t, indicators.HasSMA20)
	assert.True(t, indicators.HasSMA50)
	assert.True(t, indicators.HasRSI)
	assert.Equal(t, float64(100+59), indicators.CurrentPrice)
	// A monotonically rising series sits above both averages with RSI 100.
	assert.True(t, indicators.PriceAboveS20)
	assert.True(t, indicators.PriceAboveS50)
	assert.Equal(t, 100.0, indicators.RSI)
	// Last volume is 5x the prior average.
	assert.True(t, indicators.VolumeSpike)
}

func TestTechnicalIndicatorsWithSparseHistory(t *testing.T) {
	client := &fakeMarketClient{chart: chartFrom([]float64{10, 11}, []float64{5})}
	uc := NewMarketUsecase(client)

	indicators, err := uc.TechnicalIndicators(t.Context(), "bitcoin")
	require.NoError(t, err)

	assert.False(t, indicators.HasSMA20)
	assert.False(t, indicators.HasSMA50)
	assert.False(t, indicators.HasRSI)
	assert.False(t, indicators.VolumeSpike)
	assert.Equal(t, 11.0, indicators.CurrentPrice)
}
