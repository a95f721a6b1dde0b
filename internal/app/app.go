package app

import (
	"context"

	"github.com/coinsentry/coinsentry/internal/config"
	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/coinsentry/coinsentry/internal/infra/coingecko"
	"github.com/coinsentry/coinsentry/internal/infra/db"
	"github.com/coinsentry/coinsentry/internal/infra/log"
	"github.com/coinsentry/coinsentry/internal/infra/notify"
	"github.com/coinsentry/coinsentry/internal/state"
	"github.com/coinsentry/coinsentry/internal/usecase"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	store      *state.Store
	poller     *usecase.Poller
	evaluator  *usecase.Evaluator
	alertRepo  domain.AlertRepository
	alertUC    *usecase.AlertUsecase
	watchUC    *usecase.WatchlistUsecase
	settingsUC *usecase.SettingsUsecase
	marketUC   *usecase.MarketUsecase
	cleanupFn  func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}

	userRepo := db.NewUserRepository(dbConn)
	alertRepo := db.NewAlertRepository(dbConn)
	watchlistRepo := db.NewWatchlistRepository(dbConn)
	settingsRepo := db.NewSettingsRepository(dbConn)

	market := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, cfg.CoinGeckoTimeout, logger)
	notifier := notify.NewDesktop(logger)

	userUC := usecase.NewUserUsecase(userRepo)
	alertUC := usecase.NewAlertUsecase(userRepo, alertRepo)
	watchUC := usecase.NewWatchlistUsecase(userRepo, watchlistRepo)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo)
	marketUC := usecase.NewMarketUsecase(market)
	evaluator := usecase.NewEvaluator(market, alertRepo, notifier, logger)

	user, err := userUC.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	watchlist, err := watchUC.EnsureDefault(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := settingsUC.Get(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := alertRepo.List(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	items, err := watchlistRepo.ListItemsByWatchlist(ctx, watchlist.ID)
	if err != nil {
		return nil, err
	}

	store := state.NewStore(state.State{
		User:           user,
		Watchlists:     []domain.Watchlist{*watchlist},
		WatchlistItems: items,
		Alerts:         alerts,
		Settings:       settings,
	})

	application := &App{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		evaluator:  evaluator,
		alertRepo:  alertRepo,
		alertUC:    alertUC,
		watchUC:    watchUC,
		settingsUC: settingsUC,
		marketUC:   marketUC,
		cleanupFn:  makeCleanup(dbConn),
	}

	poller, err := usecase.NewPoller(settings.RefreshInterval, application.evaluateTick, logger)
	if err != nil {
		return nil, err
	}
	application.poller = poller

	return application, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("coinsentry starting")

	if coins, err := a.marketUC.TopCoins(ctx, a.cfg.TopCoinsLimit); err != nil {
		a.logger.Warn("failed to load top coins", zap.Error(err))
	} else {
		a.store.Dispatch(state.SetCoins{Coins: coins})
	}

	if err := a.poller.Start(ctx); err != nil {
		return err
	}

	a.logger.Info("coinsentry started", zap.Duration("refresh_interval", a.poller.Interval()))
	<-ctx.Done()
	return nil
}

func (a *App) Shutdown() {
	a.logger.Info("coinsentry shutting down")
	a.poller.Stop()
	if a.cleanupFn != nil {
		if err := a.cleanupFn(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// Store exposes the state container so front ends can subscribe.
func (a *App) Store() *state.Store { return a.store }

func (a *App) Alerts() *usecase.AlertUsecase { return a.alertUC }

func (a *App) Watchlists() *usecase.WatchlistUsecase { return a.watchUC }

func (a *App) Market() *usecase.MarketUsecase { return a.marketUC }

// UpdateSettings merges a partial settings change, persists it, publishes
// the new snapshot, and reschedules the poller when the refresh interval
// changed.
func (a *App) UpdateSettings(ctx context.Context, update usecase.SettingsUpdate) (domain.Settings, error) {
	settings, err := a.settingsUC.Update(ctx, update)
	if err != nil {
		return domain.Settings{}, err
	}
	a.store.Dispatch(state.SetSettings{Settings: settings})
	if err := a.poller.SetInterval(ctx, settings.RefreshInterval); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// evaluateTick is one run of the alert evaluation loop: read active alerts
// and current settings, evaluate, and fold triggered alerts back into the
// in-memory state. Settings are re-read every tick so an interval change
// persisted out of band still reschedules the poller.
func (a *App) evaluateTick(ctx context.Context) {
	settings, err := a.settingsUC.Get(ctx)
	if err != nil {
		a.logger.Warn("failed to load settings for tick", zap.Error(err))
		return
	}

	active, err := a.alertRepo.ListActive(ctx)
	if err != nil {
		a.logger.Warn("failed to list active alerts", zap.Error(err))
		return
	}

	result := a.evaluator.Evaluate(ctx, active, settings)
	for _, alertID := range result.TriggeredIDs {
		a.store.Dispatch(state.MarkAlertTriggered{AlertID: alertID})
	}

	if settings.RefreshInterval != a.poller.Interval() {
		if err := a.poller.SetInterval(ctx, settings.RefreshInterval); err != nil {
			a.logger.Warn("failed to reschedule poller", zap.Error(err))
		}
	}
}

func makeCleanup(dbConn *gorm.DB) func() error {
	return func() error {
		sqlDB, err := dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}
