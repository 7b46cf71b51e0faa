package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/middleware"
)

// reminderService implements portssvc.ReminderSvcFacade: one scan-and-notify
// pass over patients whose weekly health log has gone stale.
type reminderService struct {
	userRepo   portsrepo.UserRepository
	mailer     portssvc.MailSender
	staleAfter time.Duration
	portalURL  string
}

// NewReminderService creates a new reminder service.
func NewReminderService(userRepo portsrepo.UserRepository, mailer portssvc.MailSender, staleAfter time.Duration, portalURL string) portssvc.ReminderSvcFacade {
	return &reminderService{
		userRepo:   userRepo,
		mailer:     mailer,
		staleAfter: staleAfter,
		portalURL:  portalURL,
	}
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

// RunPass scans for stale patient logs and sends one reminder per staleness
// episode. Sends happen sequentially; a failed send for one user is logged and
// skipped so the rest of the pass proceeds, and the sent flag is only flipped
// after confirmed delivery so the next pass retries the failure.
func (s *reminderService) RunPass(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cutoff := time.Now().Add(-s.staleAfter)
	stale, err := s.userRepo.FindStalePatients(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale patients: %w", err)
	}

	sent := 0
	for i := range stale {
		user := &stale[i]
		if err := ctx.Err(); err != nil {
			logger.Warn("Reminder pass cancelled", slog.Int("sent", sent))
			return sent, err
		}

		body := reminderMailBody(user.Name, s.portalURL)
		if err := s.mailer.Send(ctx, user.Email, "Time to update your weekly health log", body); err != nil {
			logger.Warn("Reminder mail delivery failed",
				slog.String("user_id", user.UserID),
				slog.String("error", err.Error()))
			continue
		}

		// Flag only after confirmed delivery: a user who was not reached stays
		// eligible on the next pass.
		if err := s.userRepo.MarkReminderSent(ctx, user.UserID); err != nil {
			logger.Error("Failed to mark reminder sent",
				slog.String("user_id", user.UserID),
				slog.String("error", err.Error()))
			continue
		}
		sent++
	}

	logger.Info("Reminder pass completed", slog.Int("eligible", len(stale)), slog.Int("sent", sent))
	return sent, nil
}

func reminderMailBody(name, portalURL string) string {
	return fmt.Sprintf(
		`<html><body><p>Hello %s,</p><p>Your weekly health log has not been updated in over a week. Keeping it current helps your care team spot problems early.</p><p><a href="%s">Update your log</a></p></body></html>`,
		name, portalURL,
	)
}
