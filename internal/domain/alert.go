package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertType is the closed set of evaluated alert conditions.
type AlertType string

const (
	AlertPriceAbove       AlertType = "price_above"
	AlertPriceBelow       AlertType = "price_below"
	AlertPercentageChange AlertType = "percentage_change"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertPriceAbove, AlertPriceBelow, AlertPercentageChange:
		return true
	default:
		return false
	}
}

type AlertStatus string

const (
	AlertActive    AlertStatus = "active"
	AlertTriggered AlertStatus = "triggered"
	AlertDisabled  AlertStatus = "disabled"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertActive, AlertTriggered, AlertDisabled:
		return true
	default:
		return false
	}
}

// Alert is one user-configured price or percentage condition tied to a coin.
// Active -> Triggered is the only transition the evaluator performs; a
// triggered alert is never evaluated again unless the user re-enables it.
type Alert struct {
	ID           string
	UserID       string
	CoinID       string
	Type         AlertType
	TriggerValue decimal.Decimal
	Status       AlertStatus
	// CreatedAt is assigned once at creation and never updated, including on
	// the transition to triggered.
	CreatedAt time.Time
}
