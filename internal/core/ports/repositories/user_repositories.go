package repositories

import (
	"context"
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
)

// UserRepository defines persistence operations for user credential records.
type UserRepository interface {
	// SaveUser inserts a new user record. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound if absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external identity provider linkage.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)

	// UpdateUser persists mutable profile fields (name, phone, preferred language).
	UpdateUser(ctx context.Context, user domain.User) error

	// SetResetToken stores a freshly issued reset token and its expiry on the
	// record, overwriting any previous token (last writer wins).
	SetResetToken(ctx context.Context, userID string, token string, expiry time.Time) error

	// UpdatePassword commits a new password hash and clears the stored reset
	// token and expiry in the same operation, enforcing single-use redemption.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// TouchWeeklyLog advances WeeklyLogLastUpdated and resets WeeklyReminderSent
	// to false in the same update.
	TouchWeeklyLog(ctx context.Context, userID string, at time.Time) error

	// MarkReminderSent flips WeeklyReminderSent to true for the current staleness episode.
	MarkReminderSent(ctx context.Context, userID string) error

	// FindStalePatients returns patient records whose weekly log predates the
	// cutoff and that have not yet been reminded this episode.
	FindStalePatients(ctx context.Context, cutoff time.Time) ([]domain.User, error)
}
