// Package scheduler runs the periodic copytrading sync.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/util"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SyncScheduler triggers CopytradingUsecase.SyncTrades on a cron schedule.
// A failed pass is logged and the next tick runs as usual.
type SyncScheduler struct {
	cron        *cron.Cron
	schedule    string
	copytrading usecase.CopytradingUsecase
	timeout     time.Duration
	logger      *slog.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
}

// Params holds dependencies for the SyncScheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Copytrading usecase.CopytradingUsecase
	Logger      *slog.Logger
}

// NewSyncScheduler registers the sync job and ties the cron lifecycle to fx.
func NewSyncScheduler(params Params) (*SyncScheduler, error) {
	schedule := params.Config.Copytrading.SyncSchedule

	s, err := New(schedule, params.Copytrading, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()

			return nil
		},
		OnStop: s.Stop,
	})

	return s, nil
}

// New builds a scheduler for schedule, a standard cron spec or an @every descriptor.
func New(schedule string, copytrading usecase.CopytradingUsecase, logger *slog.Logger) (*SyncScheduler, error) {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	ctx, cancel := context.WithCancel(context.Background())

	s := &SyncScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		schedule:    schedule,
		copytrading: copytrading,
		timeout:     passTimeout(schedule),
		logger:      logger,
		baseCtx:     ctx,
		cancel:      cancel,
	}

	if _, err := s.cron.AddFunc(schedule, s.runPass); err != nil {
		cancel()

		return nil, errors.Wrapf(err, "invalid copytrading sync schedule %q", schedule)
	}

	return s, nil
}

// Start begins firing the schedule in the background.
func (s *SyncScheduler) Start() {
	s.logger.Info("Starting copytrading sync scheduler", slog.String("schedule", s.schedule))
	s.cron.Start()
}

// Stop cancels a running pass and waits for it to return or for ctx to expire.
func (s *SyncScheduler) Stop(ctx context.Context) error {
	s.logger.Info("Stopping copytrading sync scheduler")
	s.cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "copytrading sync did not stop in time")
	}
}

func (s *SyncScheduler) runPass() {
	ctx, cancel := context.WithTimeout(s.baseCtx, s.timeout)
	defer cancel()

	report, err := s.copytrading.SyncTrades(ctx)
	if err != nil {
		s.logger.Error("Copytrading sync pass failed", slog.Any("error", err))

		return
	}
	if report.Skipped {
		s.logger.Debug("Copytrading sync pass skipped, previous pass still running")

		return
	}

	s.logger.Debug("Copytrading sync pass finished",
		slog.Int("accounts", report.Accounts),
		slog.Int("promoted", report.Promoted),
		slog.Int("failed", report.Failed),
		slog.Int("opened", report.TradesOpened),
		slog.Int("closed", report.TradesClosed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)
}

// passTimeout bounds one pass by its interval so a hung broker cannot pile up passes.
func passTimeout(schedule string) time.Duration {
	const fallback = time.Minute

	parsed, err := cron.ParseStandard(schedule)
	if err != nil {
		return fallback
	}
	now := time.Now()
	next := parsed.Next(now)
	if interval := parsed.Next(next).Sub(next); interval > 0 {
		return interval
	}

	return fallback
}
