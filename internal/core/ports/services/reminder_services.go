package services

import "context"

// ReminderSvcFacade runs the stale-health-log reminder scan.
type ReminderSvcFacade interface {
	// RunPass performs one scan-and-notify pass and returns how many reminders
	// were delivered. Per-user delivery failures are logged and skipped; they
	// never abort the pass.
	RunPass(ctx context.Context) (int, error)
}
