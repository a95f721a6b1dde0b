package coingecko

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// cacheTTL matches the upstream rate-limit budget: identical requests within
// the window are served from memory.
const cacheTTL = time.Minute

const maxSearchResults = 10

type Client struct {
	http   *resty.Client
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		http.SetHeader("x-cg-demo-api-key", apiKey)
	}
	return &Client{
		http:   http,
		cache:  gocache.New(cacheTTL, 5*time.Minute),
		logger: logger,
	}
}

func (c *Client) Quotes(ctx context.Context, coinIDs []string) (map[string]domain.CoinQuote, error) {
	if len(coinIDs) == 0 {
		return map[string]domain.CoinQuote{}, nil
	}

	sorted := append([]string(nil), coinIDs...)
	sort.Strings(sorted)
	params := map[string]string{
		"vs_currency":             "usd",
		"ids":                     strings.Join(sorted, ","),
		"order":                   "market_cap_desc",
		"per_page":                "250",
		"page":                    "1",
		"sparkline":               "false",
		"price_change_percentage": "24h",
	}

	rows, err := c.fetchMarkets(ctx, params)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]domain.CoinQuote, len(rows))
	for _, row := range rows {
		if row.CurrentPrice == nil {
			// No fresh price upstream; treat the coin as absent.
			continue
		}
		quotes[row.ID] = mapRowToQuote(row)
	}
	return quotes, nil
}

func (c *Client) TopCoins(ctx context.Context, limit int) ([]domain.CoinQuote, error) {
	params := map[string]string{
		"vs_currency":             "usd",
		"order":                   "market_cap_desc",
		"per_page":                strconv.Itoa(limit),
		"page":                    "1",
		"sparkline":               "false",
		"price_change_percentage": "24h",
	}

	rows, err := c.fetchMarkets(ctx, params)
	if err != nil {
		return nil, err
	}

	coins := make([]domain.CoinQuote, 0, len(rows))
	for _, row := range rows {
		if row.CurrentPrice == nil {
			continue
		}
		coins = append(coins, mapRowToQuote(row))
	}
	return coins, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]domain.CoinMatch, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, nil
	}

	cacheKey := "search:" + query
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]domain.CoinMatch), nil
	}

	var payload searchResponse
	response, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetResult(&payload).
		Get("/search")
	if err != nil {
		c.logger.Error("coingecko search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	if response.IsError() {
		return nil, fmt.Errorf("coingecko search: status %d", response.StatusCode())
	}

	coins := payload.Coins
	if len(coins) > maxSearchResults {
		coins = coins[:maxSearchResults]
	}
	matches := make([]domain.CoinMatch, 0, len(coins))
	for _, coin := range coins {
		matches = append(matches, domain.CoinMatch{
			CoinID:        coin.ID,
			Name:          coin.Name,
			Symbol:        coin.Symbol,
			MarketCapRank: coin.MarketCapRank,
			Thumb:         coin.Thumb,
		})
	}

	c.cache.SetDefault(cacheKey, matches)
	return matches, nil
}

func (c *Client) MarketChart(ctx context.Context, coinID string, days int) (*domain.MarketChart, error) {
	cacheKey := fmt.Sprintf("chart:%s:%d", coinID, days)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(*domain.MarketChart), nil
	}

	var payload chartResponse
	response, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"days":        strconv.Itoa(days),
		}).
		SetResult(&payload).
		Get("/coins/" + coinID + "/market_chart")
	if err != nil {
		c.logger.Error("coingecko market chart failed", zap.String("coin_id", coinID), zap.Error(err))
		return nil, err
	}
	if response.IsError() {
		return nil, fmt.Errorf("coingecko market chart: status %d", response.StatusCode())
	}

	chart := &domain.MarketChart{
		Prices:  mapChartPoints(payload.Prices),
		Volumes: mapChartPoints(payload.TotalVolumes),
	}
	c.cache.SetDefault(cacheKey, chart)
	return chart, nil
}

func (c *Client) fetchMarkets(ctx context.Context, params map[string]string) ([]marketRow, error) {
	cacheKey := marketsCacheKey(params)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]marketRow), nil
	}

	start := time.Now()
	var rows []marketRow
	response, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&rows).
		Get("/coins/markets")
	if err != nil {
		c.logger.Error("coingecko markets request failed", zap.Error(err))
		return nil, err
	}

	c.logger.Debug(
		"coingecko markets request complete",
		zap.Int("status", response.StatusCode()),
		zap.Int("rows", len(rows)),
		zap.Duration("duration", time.Since(start)),
	)

	if response.IsError() {
		return nil, fmt.Errorf("coingecko markets: status %d", response.StatusCode())
	}

	c.cache.SetDefault(cacheKey, rows)
	return rows, nil
}

func marketsCacheKey(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString("markets")
	for _, key := range keys {
		builder.WriteString("|")
		builder.WriteString(key)
		builder.WriteString("=")
		builder.WriteString(params[key])
	}
	return builder.String()
}

func mapRowToQuote(row marketRow) domain.CoinQuote {
	quote := domain.CoinQuote{
		CoinID: row.ID,
		Symbol: row.Symbol,
		Name:   row.Name,
		Price:  *row.CurrentPrice,
		Image:  row.Image,
	}
	if row.PriceChange24h != nil {
		quote.ChangePercent24h = *row.PriceChange24h
	} else {
		quote.ChangePercent24h = decimal.Zero
	}
	if row.TotalVolume != nil {
		quote.Volume24h = *row.TotalVolume
	}
	if row.MarketCap != nil {
		quote.MarketCap = *row.MarketCap
	}
	return quote
}

func mapChartPoints(pairs [][2]float64) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(pairs))
	for _, pair := range pairs {
		points = append(points, domain.ChartPoint{
			Time:  time.UnixMilli(int64(pair[0])).UTC(),
			Value: pair[1],
		})
	}
	return points
}
