package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coinsentry/coinsentry/internal/domain"
	"go.uber.org/zap"
)

// Notifier displays a human-visible notification. The return reports whether
// it was actually shown; delivery failure is not an evaluation failure.
type Notifier interface {
	Notify(title, body string) bool
}

// QuoteSource is the slice of the market client the evaluator needs.
type QuoteSource interface {
	Quotes(ctx context.Context, coinIDs []string) (map[string]domain.CoinQuote, error)
}

// AlertStatusStore is the slice of the alert repository the evaluator needs.
type AlertStatusStore interface {
	SetStatus(ctx context.Context, alertID string, status domain.AlertStatus) error
}

// EvaluationResult summarizes one tick so the caller can update in-memory
// state without reloading the store.
type EvaluationResult struct {
	// TriggeredIDs lists the alerts transitioned to triggered this tick, in
	// evaluation order.
	TriggeredIDs []string
	Evaluated    int
	Skipped      int
}

// Evaluator checks active alerts against fresh market data on each tick. It
// holds no state across ticks; a tick is purely a function of the alert set,
// the settings, and the quotes it fetches.
type Evaluator struct {
	market   QuoteSource
	store    AlertStatusStore
	notifier Notifier
	logger   *zap.Logger
}

func NewEvaluator(market QuoteSource, store AlertStatusStore, notifier Notifier, logger *zap.Logger) *Evaluator {
	return &Evaluator{market: market, store: store, notifier: notifier, logger: logger}
}

// Evaluate runs one tick over the given active alerts. When notifications
// are disabled or no alerts are active it performs no work at all: no quote
// fetch and no store write. A total quote fetch failure aborts the tick
// silently; the same conditions are re-checked on the next tick.
func (e *Evaluator) Evaluate(ctx context.Context, activeAlerts []domain.Alert, settings domain.Settings) EvaluationResult {
	var result EvaluationResult

	if !settings.Notifications || len(activeAlerts) == 0 {
		return result
	}

	coinIDs := distinctCoinIDs(activeAlerts)
	quotes, err := e.market.Quotes(ctx, coinIDs)
	if err != nil {
		e.logger.Warn("quote fetch failed, skipping tick", zap.Int("alerts", len(activeAlerts)), zap.Error(err))
		return result
	}

	for _, alert := range activeAlerts {
		quote, ok := quotes[alert.CoinID]
		if !ok {
			result.Skipped++
			continue
		}
		result.Evaluated++

		triggered, message := evaluatePredicate(alert, quote)
		if !triggered {
			continue
		}

		// Notification first, then the status transition. The transition is
		// independent of delivery success: a blocked notifier must not leave
		// the alert re-firing forever.
		if !e.notifier.Notify(alertTitle(quote), alertBody(quote, message)) {
			e.logger.Warn("notification not delivered", zap.String("alert_id", alert.ID), zap.String("coin_id", alert.CoinID))
		}

		if err := e.store.SetStatus(ctx, alert.ID, domain.AlertTriggered); err != nil {
			e.logger.Warn("failed to mark alert triggered", zap.String("alert_id", alert.ID), zap.Error(err))
			continue
		}

		result.TriggeredIDs = append(result.TriggeredIDs, alert.ID)
		e.logger.Info(
			"alert triggered",
			zap.String("alert_id", alert.ID),
			zap.String("coin_id", alert.CoinID),
			zap.String("type", string(alert.Type)),
			zap.String("trigger_value", alert.TriggerValue.String()),
			zap.String("price", quote.Price.String()),
		)
	}

	return result
}

func evaluatePredicate(alert domain.Alert, quote domain.CoinQuote) (bool, string) {
	switch alert.Type {
	case domain.AlertPriceAbove:
		if quote.Price.GreaterThanOrEqual(alert.TriggerValue) {
			return true, fmt.Sprintf("Price reached $%s (target: $%s)", quote.Price.StringFixed(2), alert.TriggerValue.String())
		}
	case domain.AlertPriceBelow:
		if quote.Price.LessThanOrEqual(alert.TriggerValue) {
			return true, fmt.Sprintf("Price dropped to $%s (target: $%s)", quote.Price.StringFixed(2), alert.TriggerValue.String())
		}
	case domain.AlertPercentageChange:
		// Sign-agnostic on both sides: a -6% move satisfies a 5% threshold.
		if quote.ChangePercent24h.Abs().GreaterThanOrEqual(alert.TriggerValue.Abs()) {
			return true, fmt.Sprintf("24h change: %s%% (target: %s%%)", quote.ChangePercent24h.StringFixed(2), alert.TriggerValue.String())
		}
	}
	return false, ""
}

func alertTitle(quote domain.CoinQuote) string {
	arrow := "↑"
	if quote.ChangePercent24h.IsNegative() {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %s Alert", arrow, quote.Name)
}

func alertBody(quote domain.CoinQuote, message string) string {
	return fmt.Sprintf("%s: %s", strings.ToUpper(quote.Symbol), message)
}

func distinctCoinIDs(alerts []domain.Alert) []string {
	seen := make(map[string]struct{}, len(alerts))
	ids := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		if _, ok := seen[alert.CoinID]; ok {
			continue
		}
		seen[alert.CoinID] = struct{}{}
		ids = append(ids, alert.CoinID)
	}
	return ids
}
