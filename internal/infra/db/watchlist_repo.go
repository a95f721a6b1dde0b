package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coinsentry/coinsentry/internal/domain"
	"gorm.io/gorm"
)

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

func (r *WatchlistRepository) CreateWatchlist(ctx context.Context, watchlist *domain.Watchlist) error {
	model := watchlistModel{
		ID:        watchlist.ID,
		UserID:    watchlist.UserID,
		Name:      watchlist.Name,
		CreatedAt: watchlist.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *WatchlistRepository) ListWatchlists(ctx context.Context, userID string) ([]domain.Watchlist, error) {
	var models []watchlistModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	watchlists := make([]domain.Watchlist, 0, len(models))
	for _, model := range models {
		watchlists = append(watchlists, domain.Watchlist{
			ID:        model.ID,
			UserID:    model.UserID,
			Name:      model.Name,
			CreatedAt: model.CreatedAt,
		})
	}
	return watchlists, nil
}

func (r *WatchlistRepository) CreateItem(ctx context.Context, item *domain.WatchlistItem) error {
	model, err := mapItemToModel(*item)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *WatchlistRepository) ListItems(ctx context.Context) ([]domain.WatchlistItem, error) {
	var models []watchlistItemModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return mapItemsToDomain(models)
}

func (r *WatchlistRepository) ListItemsByWatchlist(ctx context.Context, watchlistID string) ([]domain.WatchlistItem, error) {
	var models []watchlistItemModel
	if err := r.db.WithContext(ctx).Where("watchlist_id = ?", watchlistID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return mapItemsToDomain(models)
}

func (r *WatchlistRepository) DeleteItem(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&watchlistItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapItemsToDomain(models []watchlistItemModel) ([]domain.WatchlistItem, error) {
	items := make([]domain.WatchlistItem, 0, len(models))
	for _, model := range models {
		item, err := mapItemToDomain(model)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func mapItemToDomain(model watchlistItemModel) (domain.WatchlistItem, error) {
	thresholds := map[string]float64{}
	if model.AlertThresholds != "" {
		if err := json.Unmarshal([]byte(model.AlertThresholds), &thresholds); err != nil {
			return domain.WatchlistItem{}, fmt.Errorf("watchlist item %s: invalid thresholds: %w", model.ID, err)
		}
	}
	return domain.WatchlistItem{
		ID:                  model.ID,
		WatchlistID:         model.WatchlistID,
		CoinID:              model.CoinID,
		AlertThresholds:     thresholds,
		NotificationEnabled: model.NotificationEnabled,
		CreatedAt:           model.CreatedAt,
	}, nil
}

func mapItemToModel(item domain.WatchlistItem) (watchlistItemModel, error) {
	thresholds := "{}"
	if len(item.AlertThresholds) > 0 {
		encoded, err := json.Marshal(item.AlertThresholds)
		if err != nil {
			return watchlistItemModel{}, err
		}
		thresholds = string(encoded)
	}
	return watchlistItemModel{
		ID:                  item.ID,
		WatchlistID:         item.WatchlistID,
		CoinID:              item.CoinID,
		AlertThresholds:     thresholds,
		NotificationEnabled: item.NotificationEnabled,
		CreatedAt:           item.CreatedAt,
	}, nil
}
