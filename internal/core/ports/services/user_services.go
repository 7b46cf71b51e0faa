package services

import (
	"context"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	"github.com/CareSetu/health_portal_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateProfile updates a user's mutable profile fields. Callers may only
	// update their own profile.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// TouchWeeklyLog marks the user's weekly health log as updated now, which
	// also re-arms the reminder for the next staleness episode.
	TouchWeeklyLog(ctx context.Context, userID string) error

	// GetOrCreateGoogleUser resolves a verified Google identity to a portal
	// account, creating an externally-authenticated patient account on first login.
	GetOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
