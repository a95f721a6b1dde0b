package domain

import "time"

type Watchlist struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// WatchlistItem associates a watchlist with a tracked coin. AlertThresholds
// is a legacy per-item display of limits keyed by alert type; it is never
// evaluated, only Alert records are.
type WatchlistItem struct {
	ID                  string
	WatchlistID         string
	CoinID              string
	AlertThresholds     map[string]float64
	NotificationEnabled bool
	CreatedAt           time.Time
}
