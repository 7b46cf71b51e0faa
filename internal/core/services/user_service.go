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
	"github.com/google/uuid"
)

// userService implements portssvc.UserSvcFacade over the user repository.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	if userID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return user, nil
}

func (s *userService) TouchWeeklyLog(ctx context.Context, userID string) error {
	// Advancing the log timestamp re-arms the reminder: the sent flag is reset
	// in the same repository update.
	if err := s.userRepo.TouchWeeklyLog(ctx, userID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to touch weekly log: %w", err)
	}
	return nil
}

func (s *userService) GetOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.AuthProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// A local account with the same email keeps its password; the provider
	// linkage is attached so both login paths work. The external-auth sentinel
	// keys off the empty hash, so recording the provider here does not lock
	// the account out of local login, and the next Google login resolves
	// through FindUserByProviderDetails without rewriting the record.
	existing, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		existing.AuthProvider = domain.AuthProviderGoogle
		existing.ProviderUserID = info.ID
		existing.LastUpdatedAt = time.Now()
		if uerr := s.userRepo.UpdateUser(ctx, *existing); uerr != nil {
			return nil, fmt.Errorf("failed to link google identity: %w", uerr)
		}
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:               uuid.NewString(),
		Email:                info.Email,
		Name:                 info.Name,
		PasswordHash:         "", // external-auth sentinel
		AuthProvider:         domain.AuthProviderGoogle,
		ProviderUserID:       info.ID,
		Role:                 domain.RolePatient,
		WeeklyLogLastUpdated: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	logger.Info("Created account from Google identity", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
