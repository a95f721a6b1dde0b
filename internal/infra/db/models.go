package db

import "time"

type userModel struct {
	ID        string `gorm:"primaryKey"`
	Email     string
	Tier      string `gorm:"not null"`
	CreatedAt time.Time
}

type watchlistModel struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}

type watchlistItemModel struct {
	ID          string `gorm:"primaryKey"`
	WatchlistID string `gorm:"index;not null"`
	CoinID      string `gorm:"not null"`
	// AlertThresholds is a JSON-encoded map of alert type to threshold,
	// carried for display only.
	AlertThresholds     string
	NotificationEnabled bool
	CreatedAt           time.Time
}

// alertModel deliberately has no UpdatedAt column: a status transition must
// not disturb the record's creation time, and nothing else changes after
// creation.
type alertModel struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index;not null"`
	CoinID       string `gorm:"not null"`
	Type         string `gorm:"not null"`
	TriggerValue string `gorm:"not null"`
	Status       string `gorm:"index;not null"`
	CreatedAt    time.Time
}

// settingsModel is a single-row table; id is always 1.
type settingsModel struct {
	ID              uint `gorm:"primaryKey"`
	Notifications   bool
	RefreshInterval int64 `gorm:"not null"` // milliseconds
	Currency        string
	Theme           string
}
