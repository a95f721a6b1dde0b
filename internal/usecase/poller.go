package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

var ErrInvalidInterval = errors.New("invalid refresh interval")

// Poller drives the evaluator on a recurring schedule. At most one tick is
// in flight at a time: when a fire overlaps a still-running tick, the new
// fire is skipped rather than queued. Skipping is the documented policy; the
// skipped condition is simply re-checked on the next fire.
type Poller struct {
	scheduler *gocron.Scheduler
	tick      func(context.Context)
	logger    *zap.Logger

	mu       sync.Mutex
	job      *gocron.Job
	interval time.Duration
	inFlight atomic.Bool
}

func NewPoller(interval time.Duration, tick func(context.Context), logger *zap.Logger) (*Poller, error) {
	if !domain.ValidRefreshInterval(interval) {
		return nil, ErrInvalidInterval
	}
	return &Poller{
		scheduler: gocron.NewScheduler(time.UTC),
		tick:      tick,
		logger:    logger,
		interval:  interval,
	}, nil
}

func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	job, err := p.scheduler.Every(p.interval).Do(func() { p.run(ctx) })
	if err != nil {
		return err
	}
	p.job = job
	p.scheduler.StartAsync()
	p.logger.Info("poller started", zap.Duration("interval", p.interval))
	return nil
}

// SetInterval reschedules the recurring job with the new period. The old job
// is cancelled and a fresh one scheduled; the change takes effect on the
// next tick, never retroactively.
func (p *Poller) SetInterval(ctx context.Context, interval time.Duration) error {
	if !domain.ValidRefreshInterval(interval) {
		return ErrInvalidInterval
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if interval == p.interval {
		return nil
	}
	if p.job == nil {
		p.interval = interval
		return nil
	}

	p.scheduler.RemoveByReference(p.job)
	job, err := p.scheduler.Every(interval).Do(func() { p.run(ctx) })
	if err != nil {
		return err
	}
	p.job = job
	p.interval = interval
	p.logger.Info("poller rescheduled", zap.Duration("interval", interval))
	return nil
}

func (p *Poller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

func (p *Poller) Stop() {
	p.scheduler.Stop()
	p.logger.Info("poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug("previous tick still in flight, skipping")
		return
	}
	defer p.inFlight.Store(false)

	if ctx.Err() != nil {
		return
	}
	p.tick(ctx)
}
