package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinsentry/coinsentry/internal/domain"
)

func TestSettingsRepositoryDefaultsWhenEmpty(t *testing.T) {
	repo := NewSettingsRepository(openTestDB(t))

	settings, err := repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsRepositorySaveThenGet(t *testing.T) {
	repo := NewSettingsRepository(openTestDB(t))

	saved := domain.Settings{
		Notifications:   false,
		RefreshInterval: 5 * time.Minute,
		Currency:        "eur",
		Theme:           domain.ThemeLight,
	}
	require.NoError(t, repo.Save(t.Context(), saved))

	got, err := repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSettingsRepositorySaveOverwritesSingleRow(t *testing.T) {
	repo := NewSettingsRepository(openTestDB(t))

	first := domain.DefaultSettings()
	first.RefreshInterval = 15 * time.Second
	require.NoError(t, repo.Save(t.Context(), first))

	second := first
	second.RefreshInterval = time.Minute
	second.Notifications = false
	require.NoError(t, repo.Save(t.Context(), second))

	got, err := repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
