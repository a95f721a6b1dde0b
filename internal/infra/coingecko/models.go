package coingecko

import "github.com/shopspring/decimal"

// marketRow is one row of the /coins/markets response. Numeric fields are
// pointers because CoinGecko serves null for coins with no fresh data.
type marketRow struct {
	ID             string           `json:"id"`
	Symbol         string           `json:"symbol"`
	Name           string           `json:"name"`
	CurrentPrice   *decimal.Decimal `json:"current_price"`
	PriceChange24h *decimal.Decimal `json:"price_change_percentage_24h"`
	TotalVolume    *decimal.Decimal `json:"total_volume"`
	MarketCap      *decimal.Decimal `json:"market_cap"`
	Image          string           `json:"image"`
}

type searchResponse struct {
	Coins []searchCoin `json:"coins"`
}

type searchCoin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

// chartResponse carries [timestamp_ms, value] pairs.
type chartResponse struct {
	Prices       [][2]float64 `json:"prices"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
}
