// Package state holds the application's in-memory view of the world as an
// explicit state container: a closed set of command types applied through
// a single-writer update path, with observers notified via registered
// callbacks. No UI binding lives here; front ends subscribe, the usecases
// and the poller dispatch.
package state

import (
	"sync"

	"github.com/coinsentry/coinsentry/internal/domain"
)

// State is the complete application snapshot handed to subscribers. Slices
// are copied on every read so holders can never mutate the store.
type State struct {
	User           *domain.User
	Watchlists     []domain.Watchlist
	WatchlistItems []domain.WatchlistItem
	Alerts         []domain.Alert
	Coins          []domain.CoinQuote
	Settings       domain.Settings
	LastError      string
}

func (s State) clone() State {
	out := s
	out.Watchlists = append([]domain.Watchlist(nil), s.Watchlists...)
	out.WatchlistItems = append([]domain.WatchlistItem(nil), s.WatchlistItems...)
	out.Alerts = append([]domain.Alert(nil), s.Alerts...)
	out.Coins = append([]domain.CoinQuote(nil), s.Coins...)
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	return out
}

// Command is one transition message. The set of implementations is closed;
// the store applies them under a single-writer critical section.
type Command interface {
	apply(*State)
}

type SetUser struct{ User *domain.User }

func (c SetUser) apply(s *State) { s.User = c.User }

type SetSettings struct{ Settings domain.Settings }

func (c SetSettings) apply(s *State) { s.Settings = c.Settings }

type SetCoins struct{ Coins []domain.CoinQuote }

func (c SetCoins) apply(s *State) { s.Coins = c.Coins }

type SetWatchlists struct{ Watchlists []domain.Watchlist }

func (c SetWatchlists) apply(s *State) { s.Watchlists = c.Watchlists }

type SetWatchlistItems struct{ Items []domain.WatchlistItem }

func (c SetWatchlistItems) apply(s *State) { s.WatchlistItems = c.Items }

type AddWatchlistItem struct{ Item domain.WatchlistItem }

func (c AddWatchlistItem) apply(s *State) { s.WatchlistItems = append(s.WatchlistItems, c.Item) }

type RemoveWatchlistItem struct{ ItemID string }

func (c RemoveWatchlistItem) apply(s *State) {
	items := s.WatchlistItems[:0]
	for _, item := range s.WatchlistItems {
		if item.ID != c.ItemID {
			items = append(items, item)
		}
	}
	s.WatchlistItems = items
}

type SetAlerts struct{ Alerts []domain.Alert }

func (c SetAlerts) apply(s *State) { s.Alerts = c.Alerts }

type AddAlert struct{ Alert domain.Alert }

func (c AddAlert) apply(s *State) { s.Alerts = append(s.Alerts, c.Alert) }

// MarkAlertTriggered flips one alert to triggered in place, mirroring the
// store transition performed by the evaluator.
type MarkAlertTriggered struct{ AlertID string }

func (c MarkAlertTriggered) apply(s *State) {
	for i := range s.Alerts {
		if s.Alerts[i].ID == c.AlertID {
			s.Alerts[i].Status = domain.AlertTriggered
		}
	}
}

type RemoveAlert struct{ AlertID string }

func (c RemoveAlert) apply(s *State) {
	alerts := s.Alerts[:0]
	for _, alert := range s.Alerts {
		if alert.ID != c.AlertID {
			alerts = append(alerts, alert)
		}
	}
	s.Alerts = alerts
}

type SetError struct{ Message string }

func (c SetError) apply(s *State) { s.LastError = c.Message }

type ClearError struct{}

func (c ClearError) apply(s *State) { s.LastError = "" }

type subscriber struct {
	id int
	fn func(State)
}

// Store is the single writer over State.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   []subscriber
	nextID int
}

func NewStore(initial State) *Store {
	return &Store{state: initial.clone()}
}

// Dispatch applies the command and notifies subscribers with an immutable
// snapshot. Callbacks run outside the critical section so a subscriber may
// itself read the store.
func (s *Store) Dispatch(cmd Command) {
	s.mu.Lock()
	cmd.apply(&s.state)
	snapshot := s.state.clone()
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snapshot)
	}
}

// Subscribe registers an observer and returns its unsubscribe function.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Current returns an immutable snapshot of the state.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}
