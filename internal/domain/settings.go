package domain

import "time"

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Settings is process-wide configuration, loaded once at startup and mutated
// only through merged partial updates that persist immediately.
type Settings struct {
	Notifications   bool
	RefreshInterval time.Duration
	Currency        string
	Theme           Theme
}

func DefaultSettings() Settings {
	return Settings{
		Notifications:   true,
		RefreshInterval: 30 * time.Second,
		Currency:        "usd",
		Theme:           ThemeDark,
	}
}

// RefreshIntervals is the enumerated set of allowed polling periods.
func RefreshIntervals() []time.Duration {
	return []time.Duration{
		15 * time.Second,
		30 * time.Second,
		time.Minute,
		5 * time.Minute,
	}
}

func ValidRefreshInterval(interval time.Duration) bool {
	for _, allowed := range RefreshIntervals() {
		if interval == allowed {
			return true
		}
	}
	return false
}
