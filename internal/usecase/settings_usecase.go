package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
)

var (
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidCurrency = errors.New("invalid currency")
)

// SettingsUpdate carries partial changes; nil fields are left untouched.
type SettingsUpdate struct {
	Notifications   *bool
	RefreshInterval *time.Duration
	Currency        *string
	Theme           *domain.Theme
}

type SettingsUsecase struct {
	settings domain.SettingsRepository
}

func NewSettingsUsecase(settings domain.SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{settings: settings}
}

func (u *SettingsUsecase) Get(ctx context.Context) (domain.Settings, error) {
	return u.settings.Get(ctx)
}

// Update merges the partial change into the current settings and persists
// the merged result immediately.
func (u *SettingsUsecase) Update(ctx context.Context, update SettingsUpdate) (domain.Settings, error) {
	current, err := u.settings.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	if update.Notifications != nil {
		current.Notifications = *update.Notifications
	}
	if update.RefreshInterval != nil {
		if !domain.ValidRefreshInterval(*update.RefreshInterval) {
			return domain.Settings{}, ErrInvalidInterval
		}
		current.RefreshInterval = *update.RefreshInterval
	}
	if update.Currency != nil {
		if *update.Currency == "" {
			return domain.Settings{}, ErrInvalidCurrency
		}
		current.Currency = *update.Currency
	}
	if update.Theme != nil {
		if *update.Theme != domain.ThemeDark && *update.Theme != domain.ThemeLight {
			return domain.Settings{}, ErrInvalidTheme
		}
		current.Theme = *update.Theme
	}

	if err := u.settings.Save(ctx, current); err != nil {
		return domain.Settings{}, err
	}
	return current, nil
}
