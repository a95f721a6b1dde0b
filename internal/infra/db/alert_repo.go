package db

import (
	"context"
	"fmt"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	model := mapAlertToModel(*alert)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *AlertRepository) List(ctx context.Context, userID string) ([]domain.Alert, error) {
	var models []alertModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return mapAlertsToDomain(models)
}

func (r *AlertRepository) ListActive(ctx context.Context) ([]domain.Alert, error) {
	var models []alertModel
	if err := r.db.WithContext(ctx).Where("status = ?", string(domain.AlertActive)).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return mapAlertsToDomain(models)
}

func (r *AlertRepository) SetStatus(ctx context.Context, alertID string, status domain.AlertStatus) error {
	result := r.db.WithContext(ctx).Model(&alertModel{}).Where("id = ?", alertID).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, userID string, alertID string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", alertID, userID).Delete(&alertModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapAlertsToDomain(models []alertModel) ([]domain.Alert, error) {
	alerts := make([]domain.Alert, 0, len(models))
	for _, model := range models {
		alert, err := mapAlertToDomain(model)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func mapAlertToDomain(model alertModel) (domain.Alert, error) {
	trigger, err := decimal.NewFromString(model.TriggerValue)
	if err != nil {
		return domain.Alert{}, fmt.Errorf("alert %s: invalid trigger value %q: %w", model.ID, model.TriggerValue, err)
	}
	return domain.Alert{
		ID:           model.ID,
		UserID:       model.UserID,
		CoinID:       model.CoinID,
		Type:         domain.AlertType(model.Type),
		TriggerValue: trigger,
		Status:       domain.AlertStatus(model.Status),
		CreatedAt:    model.CreatedAt,
	}, nil
}

func mapAlertToModel(alert domain.Alert) alertModel {
	return alertModel{
		ID:           alert.ID,
		UserID:       alert.UserID,
		CoinID:       alert.CoinID,
		Type:         string(alert.Type),
		TriggerValue: alert.TriggerValue.String(),
		Status:       string(alert.Status),
		CreatedAt:    alert.CreatedAt,
	}
}
