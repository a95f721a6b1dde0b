package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrCoinAlreadyWatched = errors.New("coin already in watchlist")
	ErrWatchlistLimit     = errors.New("watchlist item limit reached for tier")
	ErrItemNotFound       = errors.New("watchlist item not found")
)

const defaultWatchlistName = "My Crypto"

type WatchlistUsecase struct {
	users      domain.UserRepository
	watchlists domain.WatchlistRepository
}

func NewWatchlistUsecase(users domain.UserRepository, watchlists domain.WatchlistRepository) *WatchlistUsecase {
	return &WatchlistUsecase{users: users, watchlists: watchlists}
}

// EnsureDefault creates the default watchlist on first run and returns the
// user's first watchlist otherwise.
func (u *WatchlistUsecase) EnsureDefault(ctx context.Context) (*domain.Watchlist, error) {
	user, err := u.users.Get(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := u.watchlists.ListWatchlists(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	watchlist := &domain.Watchlist{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      defaultWatchlistName,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.watchlists.CreateWatchlist(ctx, watchlist); err != nil {
		return nil, err
	}
	return watchlist, nil
}

// AddCoin tracks a coin on the given watchlist. Duplicates per watchlist are
// rejected and free tier users are capped on total tracked items.
func (u *WatchlistUsecase) AddCoin(ctx context.Context, watchlistID, coinID string, thresholds map[string]float64) (*domain.WatchlistItem, error) {
	user, err := u.users.Get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := u.watchlists.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.WatchlistID == watchlistID && item.CoinID == coinID {
			return nil, ErrCoinAlreadyWatched
		}
	}
	if !user.Tier.AllowsWatchlistItems(len(items)) {
		return nil, ErrWatchlistLimit
	}

	item := &domain.WatchlistItem{
		ID:                  uuid.NewString(),
		WatchlistID:         watchlistID,
		CoinID:              coinID,
		AlertThresholds:     thresholds,
		NotificationEnabled: true,
		CreatedAt:           time.Now().UTC(),
	}
	if err := u.watchlists.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *WatchlistUsecase) RemoveItem(ctx context.Context, itemID string) error {
	if err := u.watchlists.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (u *WatchlistUsecase) Items(ctx context.Context, watchlistID string) ([]domain.WatchlistItem, error) {
	return u.watchlists.ListItemsByWatchlist(ctx, watchlistID)
}
