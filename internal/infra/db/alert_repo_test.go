package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coinsentry/coinsentry/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	return conn
}

func newAlert(id, coinID string, kind domain.AlertType, trigger string, status domain.AlertStatus) domain.Alert {
	return domain.Alert{
		ID:           id,
		UserID:       "user-1",
		CoinID:       coinID,
		Type:         kind,
		TriggerValue: decimal.RequireFromString(trigger),
		Status:       status,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestAlertRepositoryRoundTrip(t *testing.T) {
	repo := NewAlertRepository(openTestDB(t))

	alert := newAlert("a1", "bitcoin", domain.AlertPriceAbove, "50000", domain.AlertActive)
	require.NoError(t, repo.Create(t.Context(), &alert))

	alerts, err := repo.List(t.Context(), "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	got := alerts[0]
	assert.Equal(t, alert.ID, got.ID)
	assert.Equal(t, alert.CoinID, got.CoinID)
	assert.Equal(t, alert.Type, got.Type)
	assert.True(t, got.TriggerValue.Equal(alert.TriggerValue))
	assert.Equal(t, domain.AlertActive, got.Status)
	assert.WithinDuration(t, alert.CreatedAt, got.CreatedAt, time.Second)
}

func TestAlertRepositoryListActiveFiltersStatus(t *testing.T) {
	repo := NewAlertRepository(openTestDB(t))

	active := newAlert("a1", "bitcoin", domain.AlertPriceAbove, "50000", domain.AlertActive)
	triggered := newAlert("a2", "ethereum", domain.AlertPriceBelow, "2000", domain.AlertTriggered)
	disabled := newAlert("a3", "solana", domain.AlertPercentageChange, "5", domain.AlertDisabled)
	for _, alert := range []domain.Alert{active, triggered, disabled} {
		require.NoError(t, repo.Create(t.Context(), &alert))
	}

	alerts, err := repo.ListActive(t.Context())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "a1", alerts[0].ID)
}

func TestAlertRepositorySetStatus(t *testing.T) {
	repo := NewAlertRepository(openTestDB(t))

	alert := newAlert("a1", "bitcoin", domain.AlertPriceAbove, "50000", domain.AlertActive)
	require.NoError(t, repo.Create(t.Context(), &alert))

	require.NoError(t, repo.SetStatus(t.Context(), "a1", domain.AlertTriggered))

	alerts, err := repo.List(t.Context(), "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertTriggered, alerts[0].Status)
	assert.WithinDuration(t, alert.CreatedAt, alerts[0].CreatedAt, time.Second)
}

func TestAlertRepositorySetStatusUnknownAlert(t *testing.T) {
	repo := NewAlertRepository(openTestDB(t))

	err := repo.SetStatus(t.Context(), "missing", domain.AlertTriggered)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlertRepositoryDelete(t *testing.T) {
	repo := NewAlertRepository(openTestDB(t))

	alert := newAlert("a1", "bitcoin", domain.AlertPriceAbove, "50000", domain.AlertActive)
	require.NoError(t, repo.Create(t.Context(), &alert))

	require.NoError(t, repo.Delete(t.Context(), "user-1", "a1"))
	assert.ErrorIs(t, repo.Delete(t.Context(), "user-1", "a1"), domain.ErrNotFound)

	// Owner mismatch must not delete.
	other := newAlert("a2", "ethereum", domain.AlertPriceBelow, "2000", domain.AlertActive)
	require.NoError(t, repo.Create(t.Context(), &other))
	assert.ErrorIs(t, repo.Delete(t.Context(), "someone-else", "a2"), domain.ErrNotFound)
}
