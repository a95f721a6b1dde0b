package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type AlertRepository interface {
	Create(ctx context.Context, alert *Alert) error
	List(ctx context.Context, userID string) ([]Alert, error)
	ListActive(ctx context.Context) ([]Alert, error)
	// SetStatus updates a single alert's status. Each update is independent;
	// there is no transactional guarantee across alerts.
	SetStatus(ctx context.Context, alertID string, status AlertStatus) error
	Delete(ctx context.Context, userID string, alertID string) error
}

type WatchlistRepository interface {
	CreateWatchlist(ctx context.Context, watchlist *Watchlist) error
	ListWatchlists(ctx context.Context, userID string) ([]Watchlist, error)
	CreateItem(ctx context.Context, item *WatchlistItem) error
	ListItems(ctx context.Context) ([]WatchlistItem, error)
	ListItemsByWatchlist(ctx context.Context, watchlistID string) ([]WatchlistItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type SettingsRepository interface {
	// Get returns the persisted settings, or defaults when nothing has been
	// saved yet.
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

type UserRepository interface {
	Get(ctx context.Context) (*User, error)
	Create(ctx context.Context, user *User) error
}
