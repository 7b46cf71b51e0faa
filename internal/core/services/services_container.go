package services

import (
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sessions portssvc.SessionStore, mailer portssvc.MailSender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Sessions = sessions
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, sessions, mailer, cfg.FrontendBaseURL)
	container.PasswordReset = NewPasswordResetService(repos.UserRepo, mailer, cfg.ResetTokenTTL, cfg.FrontendBaseURL)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Hospital = NewHospitalService(repos.HospitalRepo, repos.UserRepo)
	container.Appointment = NewAppointmentService(repos.AppointmentRepo, repos.HospitalRepo, repos.UserRepo)
	container.Reminder = NewReminderService(repos.UserRepo, mailer, cfg.ReminderStaleAfter, cfg.FrontendBaseURL)

	return container
}
