package usecase

import (
	"testing"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpdateMergesPartialChanges(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUsecase(repo)

	interval := time.Minute
	updated, err := uc.Update(t.Context(), SettingsUpdate{RefreshInterval: &interval})
	require.NoError(t, err)

	// Only the interval changed; the rest keeps its previous value.
	defaults := domain.DefaultSettings()
	assert.Equal(t, time.Minute, updated.RefreshInterval)
	assert.Equal(t, defaults.Notifications, updated.Notifications)
	assert.Equal(t, defaults.Currency, updated.Currency)
	assert.Equal(t, defaults.Theme, updated.Theme)

	// The merged result was persisted immediately.
	require.NotNil(t, repo.saved)
	assert.Equal(t, updated, *repo.saved)
}

func TestSettingsUpdateAccumulatesAcrossCalls(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUsecase(repo)

	disabled := false
	_, err := uc.Update(t.Context(), SettingsUpdate{Notifications: &disabled})
	require.NoError(t, err)

	currency := "eur"
	updated, err := uc.Update(t.Context(), SettingsUpdate{Currency: &currency})
	require.NoError(t, err)

	assert.False(t, updated.Notifications)
	assert.Equal(t, "eur", updated.Currency)
}

func TestSettingsUpdateRejectsIntervalOutsideEnum(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUsecase(repo)

	interval := 45 * time.Second
	_, err := uc.Update(t.Context(), SettingsUpdate{RefreshInterval: &interval})
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Nil(t, repo.saved)
}

func TestSettingsUpdateRejectsUnknownTheme(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUsecase(repo)

	theme := domain.Theme("solarized")
	_, err := uc.Update(t.Context(), SettingsUpdate{Theme: &theme})
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestSettingsUpdateRejectsEmptyCurrency(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewSettingsUsecase(repo)

	currency := ""
	_, err := uc.Update(t.Context(), SettingsUpdate{Currency: &currency})
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}
