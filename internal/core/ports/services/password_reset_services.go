package services

import "context"

// PasswordResetSvcFacade issues and redeems single-use password reset tokens.
type PasswordResetSvcFacade interface {
	// RequestReset issues a reset token for the account registered under email
	// and mails the reset link. Returns apperrors.ErrNotFound for unknown
	// accounts and apperrors.ErrExternalAuthOnly for externally-authenticated
	// ones; the HTTP layer masks both behind a generic response.
	RequestReset(ctx context.Context, email string) error

	// RedeemReset validates the token against the currently stored one and, on
	// success, commits the new password hash and invalidates the token in the
	// same operation.
	RedeemReset(ctx context.Context, email, token, newPassword, confirmPassword string) error
}
