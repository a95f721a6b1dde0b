package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAlertType = errors.New("invalid alert type")
	ErrInvalidThreshold = errors.New("invalid threshold")
	ErrAlertLimit       = errors.New("active alert limit reached for tier")
	ErrAlertNotFound    = errors.New("alert not found")
)

type AlertUsecase struct {
	users  domain.UserRepository
	alerts domain.AlertRepository
}

func NewAlertUsecase(users domain.UserRepository, alerts domain.AlertRepository) *AlertUsecase {
	return &AlertUsecase{users: users, alerts: alerts}
}

// CreateAlert validates and persists a new active alert. Free tier users are
// capped on concurrently active alerts.
func (u *AlertUsecase) CreateAlert(ctx context.Context, coinID string, alertType domain.AlertType, triggerValue decimal.Decimal) (*domain.Alert, error) {
	user, err := u.users.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !alertType.Valid() {
		return nil, ErrInvalidAlertType
	}
	if triggerValue.IsZero() {
		return nil, ErrInvalidThreshold
	}
	if alertType != domain.AlertPercentageChange && triggerValue.IsNegative() {
		// Price thresholds are absolute prices; only the percentage kind is
		// sign-agnostic.
		return nil, ErrInvalidThreshold
	}

	active, err := u.alerts.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if !user.Tier.AllowsActiveAlerts(len(active)) {
		return nil, ErrAlertLimit
	}

	alert := &domain.Alert{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		CoinID:       coinID,
		Type:         alertType,
		TriggerValue: triggerValue,
		Status:       domain.AlertActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (u *AlertUsecase) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	user, err := u.users.Get(ctx)
	if err != nil {
		return nil, err
	}
	return u.alerts.List(ctx, user.ID)
}

// EnableAlert re-arms an alert: the only path back to active from triggered
// or disabled. The evaluator itself never re-arms.
func (u *AlertUsecase) EnableAlert(ctx context.Context, alertID string) error {
	return u.setStatus(ctx, alertID, domain.AlertActive)
}

func (u *AlertUsecase) DisableAlert(ctx context.Context, alertID string) error {
	return u.setStatus(ctx, alertID, domain.AlertDisabled)
}

func (u *AlertUsecase) DeleteAlert(ctx context.Context, alertID string) error {
	user, err := u.users.Get(ctx)
	if err != nil {
		return err
	}
	if err := u.alerts.Delete(ctx, user.ID, alertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAlertNotFound
		}
		return err
	}
	return nil
}

func (u *AlertUsecase) setStatus(ctx context.Context, alertID string, status domain.AlertStatus) error {
	if err := u.alerts.SetStatus(ctx, alertID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAlertNotFound
		}
		return err
	}
	return nil
}
