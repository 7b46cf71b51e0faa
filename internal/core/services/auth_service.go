package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/CareSetu/health_portal_app/internal/utils"
	"github.com/google/uuid"
)

// authService implements portssvc.AuthSvcFacade: credential verification plus
// session lifecycle over the injected session store.
type authService struct {
	userRepo portsrepo.UserRepository
	sessions portssvc.SessionStore
	mailer   portssvc.MailSender
	fromBase string // frontend base URL used in mail bodies
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepository, sessions portssvc.SessionStore, mailer portssvc.MailSender, frontendBaseURL string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		mailer:   mailer,
		fromBase: frontendBaseURL,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Session, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Password != req.ConfirmPassword {
		return nil, nil, fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}
	role := domain.Role(req.Role)
	if !role.Valid() {
		return nil, nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}
	if role == domain.RoleHospitalAdmin && req.HospitalID == "" {
		return nil, nil, fmt.Errorf("hospital admin accounts require a hospitalID: %w", apperrors.ErrValidation)
	}

	// Hashing and record creation are one logical unit: a hashing failure must
	// prevent persistence entirely.
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:               uuid.NewString(),
		Email:                req.Email,
		Name:                 req.Name,
		PasswordHash:         passwordHash,
		Role:                 role,
		Phone:                req.Phone,
		PreferredLanguage:    req.PreferredLanguage,
		WeeklyLogLastUpdated: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if role == domain.RoleHospitalAdmin {
		user.HospitalID = req.HospitalID
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.sessions.Create(ctx, user.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}

	// Welcome mail is not the point of registration: deliver in the background
	// and only log failures.
	go func() {
		bg := middleware.WithLogger(context.Background(), logger)
		body := welcomeMailBody(user.Name, s.fromBase)
		if err := s.mailer.Send(bg, user.Email, "Welcome to the health portal", body); err != nil {
			logger.Warn("Welcome mail delivery failed", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		}
	}()

	return &user, session, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if user.IsExternalAuth() || user.PasswordHash == "" {
		return nil, nil, apperrors.ErrExternalAuthOnly
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, apperrors.ErrUnauthorized
	}

	session, err := s.sessions.Create(ctx, user.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}
	return user, session, nil
}

func (s *authService) EstablishSession(ctx context.Context, userID string) (*domain.Session, error) {
	session, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		// The handler must not clear the cookie on this path: a cleared cookie
		// pointing at a live session (or vice versa) is the defect to avoid.
		return fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionStore, err)
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Session outlived the account; treat as unauthenticated.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}
	return user, nil
}

func welcomeMailBody(name, portalURL string) string {
	return fmt.Sprintf(
		`<html><body><p>Hello %s,</p><p>Your health portal account is ready. Sign in at <a href="%s">%s</a> to find hospitals, book appointments and keep your weekly health log up to date.</p></body></html>`,
		name, portalURL, portalURL,
	)
}
