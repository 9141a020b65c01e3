// Package scheduler fires complete evaluation runs at fixed local times.
// It is the only component with a notion of wall-clock time: the evaluator
// receives "now" as an argument and stays pure.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/paviotti-fleet/monitor/internal/alerts"
	"github.com/paviotti-fleet/monitor/internal/model"
	notifsvc "github.com/paviotti-fleet/monitor/internal/service/notification"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

// startupDelay defers the optional run-on-start evaluation so the process
// finishes wiring before the first run.
const startupDelay = 5 * time.Second

type fleetRepository interface {
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetThresholdConfig(ctx context.Context) (model.ThresholdConfig, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, strategy retry.Strategy, f alerts.Finding, cfg model.ThresholdConfig) notifsvc.DispatchResult
}

// Options configure when runs fire.
type Options struct {
	Timezone   string
	CronSpecs  []string // standard five-field cron expressions
	RunOnStart bool
}

// Scheduler triggers evaluation runs. Overlapping runs are not prevented:
// if a run outlasts the gap between two fire times, both proceed.
type Scheduler struct {
	fleet      fleetRepository
	dispatcher dispatcher
	strategy   retry.Strategy
	opts       Options
	cron       *cron.Cron
}

// New creates a Scheduler in the configured timezone.
func New(fleet fleetRepository, d dispatcher, strategy retry.Strategy, opts Options) (*Scheduler, error) {
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", opts.Timezone, err)
	}

	return &Scheduler{
		fleet:      fleet,
		dispatcher: d,
		strategy:   strategy,
		opts:       opts,
		cron:       cron.New(cron.WithLocation(loc)),
	}, nil
}

// Start registers the fire times and begins scheduling. When RunOnStart is
// set, one evaluation run fires a few seconds after startup.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, spec := range s.opts.CronSpecs {
		spec := spec
		_, err := s.cron.AddFunc(spec, func() {
			zlog.Logger.Info().Str("spec", spec).Msg("scheduled alert run triggered")
			s.RunOnce(ctx)
		})
		if err != nil {
			return fmt.Errorf("register cron spec %q: %w", spec, err)
		}
	}

	s.cron.Start()
	zlog.Logger.Info().Strs("specs", s.opts.CronSpecs).Str("timezone", s.opts.Timezone).Msg("alert cron jobs configured")

	if s.opts.RunOnStart {
		zlog.Logger.Info().Msg("running alerts on start")
		time.AfterFunc(startupDelay, func() { s.RunOnce(ctx) })
	}

	return nil
}

// Stop halts scheduling and waits for any in-flight run started by the
// cron to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce performs one complete evaluation run: the four category passes in
// their fixed order, each entity dispatched inside its own error boundary,
// finishing with a duration summary. A run never crashes the process.
func (s *Scheduler) RunOnce(ctx context.Context) {
	start := time.Now()
	zlog.Logger.Info().Msg("starting alert evaluation run")

	cfg, err := s.fleet.GetThresholdConfig(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load threshold config, run aborted")
		return
	}

	vehicles, err := s.fleet.ListVehicles(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list vehicles, vehicle checks skipped")
	}

	users, err := s.fleet.ListUsers(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list users, license checks skipped")
	}

	now := time.Now()
	dispatched := 0
	dispatched += s.runCategory(ctx, "vtv", alerts.CheckVTV(now, vehicles), cfg)
	dispatched += s.runCategory(ctx, "license", alerts.CheckLicenses(now, users), cfg)
	dispatched += s.runCategory(ctx, "insurance", alerts.CheckInsurance(now, vehicles), cfg)
	dispatched += s.runCategory(ctx, "service", alerts.CheckService(now, vehicles, cfg), cfg)

	zlog.Logger.Info().
		Int("findings", dispatched).
		Dur("duration", time.Since(start)).
		Msg("alert evaluation run completed")
}

// runCategory dispatches one category's findings. Each finding runs inside
// its own boundary so one bad record cannot suppress the rest of the
// category.
func (s *Scheduler) runCategory(ctx context.Context, category string, findings []alerts.Finding, cfg model.ThresholdConfig) int {
	count := 0
	for _, f := range findings {
		if s.dispatchOne(ctx, f, cfg) {
			count++
		}
	}

	zlog.Logger.Info().Str("category", category).Int("alerts", count).Msg("category check completed")
	return count
}

func (s *Scheduler) dispatchOne(ctx context.Context, f alerts.Finding, cfg model.ThresholdConfig) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().
				Str("type", f.Type).
				Str("entityId", f.EntityID).
				Interface("panic", r).
				Msg("dispatch panicked, continuing with remaining findings")
			ok = false
		}
	}()

	result := s.dispatcher.Dispatch(ctx, s.strategy, f, cfg)
	if !result.Success {
		zlog.Logger.Warn().Str("type", f.Type).Str("entityId", f.EntityID).Str("error", result.Error).Msg("dispatch failed")
	}

	return true
}
