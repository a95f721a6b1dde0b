package usecase

import (
	"context"

	"github.com/coinsentry/coinsentry/internal/domain"
)

type fakeQuoteSource struct {
	quotes    map[string]domain.CoinQuote
	err       error
	calls     int
	requested [][]string
}

func (f *fakeQuoteSource) Quotes(ctx context.Context, coinIDs []string) (map[string]domain.CoinQuote, error) {
	f.calls++
	f.requested = append(f.requested, append([]string(nil), coinIDs...))
	if f.err != nil {
		return nil, f.err
	}
	return f.quotes, nil
}

type notification struct {
	title string
	body  string
}

type fakeNotifier struct {
	delivered     bool
	notifications []notification
}

func (f *fakeNotifier) Notify(title, body string) bool {
	f.notifications = append(f.notifications, notification{title: title, body: body})
	return f.delivered
}

type fakeStatusStore struct {
	statuses map[string]domain.AlertStatus
	failFor  map[string]error
	calls    []string
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{
		statuses: make(map[string]domain.AlertStatus),
		failFor:  make(map[string]error),
	}
}

func (f *fakeStatusStore) SetStatus(ctx context.Context, alertID string, status domain.AlertStatus) error {
	f.calls = append(f.calls, alertID)
	if err := f.failFor[alertID]; err != nil {
		return err
	}
	f.statuses[alertID] = status
	return nil
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) Get(ctx context.Context) (*domain.User, error) {
	if f.user == nil {
		return nil, domain.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.user = user
	return nil
}

type fakeAlertRepo struct {
	alerts    []domain.Alert
	createErr error
}

func (f *fakeAlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeAlertRepo) List(ctx context.Context, userID string) ([]domain.Alert, error) {
	var out []domain.Alert
	for _, alert := range f.alerts {
		if alert.UserID == userID {
			out = append(out, alert)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) ListActive(ctx context.Context) ([]domain.Alert, error) {
	var out []domain.Alert
	for _, alert := range f.alerts {
		if alert.Status == domain.AlertActive {
			out = append(out, alert)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) SetStatus(ctx context.Context, alertID string, status domain.AlertStatus) error {
	for i := range f.alerts {
		if f.alerts[i].ID == alertID {
			f.alerts[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAlertRepo) Delete(ctx context.Context, userID string, alertID string) error {
	for i := range f.alerts {
		if f.alerts[i].ID == alertID && f.alerts[i].UserID == userID {
			f.alerts = append(f.alerts[:i], f.alerts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeWatchlistRepo struct {
	watchlists []domain.Watchlist
	items      []domain.WatchlistItem
}

func (f *fakeWatchlistRepo) CreateWatchlist(ctx context.Context, watchlist *domain.Watchlist) error {
	f.watchlists = append(f.watchlists, *watchlist)
	return nil
}

func (f *fakeWatchlistRepo) ListWatchlists(ctx context.Context, userID string) ([]domain.Watchlist, error) {
	var out []domain.Watchlist
	for _, watchlist := range f.watchlists {
		if watchlist.UserID == userID {
			out = append(out, watchlist)
		}
	}
	return out, nil
}

func (f *fakeWatchlistRepo) CreateItem(ctx context.Context, item *domain.WatchlistItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeWatchlistRepo) ListItems(ctx context.Context) ([]domain.WatchlistItem, error) {
	return append([]domain.WatchlistItem(nil), f.items...), nil
}

func (f *fakeWatchlistRepo) ListItemsByWatchlist(ctx context.Context, watchlistID string) ([]domain.WatchlistItem, error) {
	var out []domain.WatchlistItem
	for _, item := range f.items {
		if item.WatchlistID == watchlistID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeWatchlistRepo) DeleteItem(ctx context.Context, itemID string) error {
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSettingsRepo struct {
	saved   *domain.Settings
	getErr  error
	saveErr error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	if f.getErr != nil {
		return domain.Settings{}, f.getErr
	}
	if f.saved == nil {
		return domain.DefaultSettings(), nil
	}
	return *f.saved, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings domain.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &settings
	return nil
}
