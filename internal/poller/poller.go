// Package poller runs the periodic due-alarm sweep. The alarm domain fires
// lazily at query time; the poller exists for deployments that want the
// server to observe due alarms on its own so one-shot alarms are consumed
// even when no client polls.
package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/calebmartin/chime-api/internal/config"
	"github.com/calebmartin/chime-api/internal/service"
	"github.com/go-co-op/gocron"
)

// Poller periodically sweeps all active alarms for due firings.
type Poller struct {
	scheduler *gocron.Scheduler
	alarms    *service.AlarmService
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a Poller sweeping at the configured interval.
func New(alarms *service.AlarmService, cfg config.PollerConfig, logger *slog.Logger) *Poller {
	if alarms == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("alarm service cannot be nil for Poller")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Poller{
		scheduler: gocron.NewScheduler(time.UTC),
		alarms:    alarms,
		interval:  time.Duration(cfg.IntervalSeconds) * time.Second,
		logger:    logger.With(slog.String("component", "poller")),
	}
}

// Start begins the sweep loop in the background.
func (p *Poller) Start() error {
	if _, err := p.scheduler.Every(p.interval).Do(p.sweep); err != nil {
		return err
	}
	p.scheduler.StartAsync()
	p.logger.Info("alarm poller started", slog.Duration("interval", p.interval))
	return nil
}

// Stop terminates the sweep loop and waits for a running sweep to finish.
func (p *Poller) Stop() {
	p.scheduler.Stop()
	p.logger.Info("alarm poller stopped")
}

func (p *Poller) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	due, err := p.alarms.SweepDue(ctx)
	if err != nil {
		p.logger.Error("due-alarm sweep failed", "error", err)
		return
	}

	for _, alarm := range due {
		p.logger.Info("alarm due",
			slog.String("alarm_id", alarm.ID.String()),
			slog.String("user_id", alarm.UserID.String()),
			slog.String("name", alarm.Name),
			slog.String("alarm_time", alarm.AlarmTime))
	}
}
