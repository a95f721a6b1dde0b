package db

import (
	"context"
	"errors"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"gorm.io/gorm"
)

const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns defaults when no settings row has been persisted yet, matching
// the read-with-default contract of the settings store.
func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	var model settingsModel
	if err := r.db.WithContext(ctx).First(&model, settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return domain.Settings{
		Notifications:   model.Notifications,
		RefreshInterval: time.Duration(model.RefreshInterval) * time.Millisecond,
		Currency:        model.Currency,
		Theme:           domain.Theme(model.Theme),
	}, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	model := settingsModel{
		ID:              settingsRowID,
		Notifications:   settings.Notifications,
		RefreshInterval: settings.RefreshInterval.Milliseconds(),
		Currency:        settings.Currency,
		Theme:           string(settings.Theme),
	}
	return r.db.WithContext(ctx).Save(&model).Error
}
