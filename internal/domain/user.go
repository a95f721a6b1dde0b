package domain

import "time"

type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

const (
	freeMaxWatchlistItems = 10
	freeMaxActiveAlerts   = 3
)

// AllowsWatchlistItems reports whether a user on this tier may add another
// watchlist item given the current count.
func (t SubscriptionTier) AllowsWatchlistItems(current int) bool {
	if t == TierPro {
		return true
	}
	return current < freeMaxWatchlistItems
}

// AllowsActiveAlerts reports whether a user on this tier may create another
// active alert given the current count.
func (t SubscriptionTier) AllowsActiveAlerts(current int) bool {
	if t == TierPro {
		return true
	}
	return current < freeMaxActiveAlerts
}

type User struct {
	ID        string
	Email     string
	Tier      SubscriptionTier
	CreatedAt time.Time
}
