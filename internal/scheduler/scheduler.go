package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/robfig/cron/v3"
)

// ReminderScheduler runs the daily reminder pass on a cron schedule. The job is
// wrapped in SkipIfStillRunning so a pass that overruns past the next firing is
// never entered twice concurrently; the skipped firing is simply dropped and the
// staleness predicate re-evaluates on the next one.
type ReminderScheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewReminderScheduler registers the reminder pass under cronSpec (standard
// five-field cron syntax, e.g. "0 8 * * *").
func NewReminderScheduler(cronSpec string, reminder portssvc.ReminderSvcFacade, logger *slog.Logger) (*ReminderScheduler, error) {
	cronLogger := cron.PrintfLogger(slogPrintfAdapter{logger})
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))

	_, err := c.AddFunc(cronSpec, func() {
		ctx := middleware.WithLogger(context.Background(), logger)
		if _, err := reminder.RunPass(ctx); err != nil {
			logger.Error("Reminder pass failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return nil, err
	}

	return &ReminderScheduler{cron: c, logger: logger}, nil
}

// Start begins firing on schedule.
func (s *ReminderScheduler) Start() {
	s.logger.Info("Reminder scheduler started")
	s.cron.Start()
}

// Stop halts scheduling and waits for a running pass to finish.
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped")
}

// slogPrintfAdapter lets cron's Printf-style logger write through slog.
type slogPrintfAdapter struct {
	logger *slog.Logger
}

func (a slogPrintfAdapter) Printf(format string, args ...interface{}) {
	a.logger.Info(fmt.Sprintf(format, args...))
}
