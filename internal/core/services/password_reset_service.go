package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/utils"
)

// resetTokenBytes gives 128 bits of entropy, hex encoded to 32 characters.
const resetTokenBytes = 16

// passwordResetService implements portssvc.PasswordResetSvcFacade.
type passwordResetService struct {
	userRepo        portsrepo.UserRepository
	mailer          portssvc.MailSender
	tokenTTL        time.Duration
	frontendBaseURL string
}

// NewPasswordResetService creates a new password reset service.
func NewPasswordResetService(userRepo portsrepo.UserRepository, mailer portssvc.MailSender, tokenTTL time.Duration, frontendBaseURL string) portssvc.PasswordResetSvcFacade {
	return &passwordResetService{
		userRepo:        userRepo,
		mailer:          mailer,
		tokenTTL:        tokenTTL,
		frontendBaseURL: frontendBaseURL,
	}
}

var _ portssvc.PasswordResetSvcFacade = (*passwordResetService)(nil)

func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up user for reset: %w", err)
	}

	if user.IsExternalAuth() || user.PasswordHash == "" {
		return apperrors.ErrExternalAuthOnly
	}

	token, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(s.tokenTTL)
	// Last writer wins: re-requesting invalidates any previously issued token.
	if err := s.userRepo.SetResetToken(ctx, user.UserID, token, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	// Delivering the link is the point of this operation, so a transport
	// failure fails the request.
	body := resetMailBody(user.Name, s.resetLink(user.Email, token))
	if err := s.mailer.Send(ctx, user.Email, "Reset your health portal password", body); err != nil {
		return fmt.Errorf("failed to deliver reset mail: %w", err)
	}
	return nil
}

func (s *passwordResetService) RedeemReset(ctx context.Context, email, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up user for redeem: %w", err)
	}

	if user.ResetToken == "" || user.ResetTokenExpiry == nil {
		return apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.ResetTokenExpiry) {
		return apperrors.ErrUnauthorized
	}
	if !utils.SecureCompare(token, user.ResetToken) {
		return apperrors.ErrUnauthorized
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// UpdatePassword clears the stored token in the same operation, so a
	// redeemed token can never replay and a concurrent password change
	// invalidates any outstanding token.
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		return fmt.Errorf("failed to commit new password: %w", err)
	}
	return nil
}

func (s *passwordResetService) resetLink(email, token string) string {
	return fmt.Sprintf("%s/reset-password?email=%s&token=%s",
		s.frontendBaseURL, url.QueryEscape(email), url.QueryEscape(token))
}

func resetMailBody(name, link string) string {
	return fmt.Sprintf(
		`<html><body><p>Hello %s,</p><p>We received a request to reset your health portal password. Use the link below to choose a new one. The link expires shortly and can be used once.</p><p><a href="%s">Reset password</a></p><p>If you did not request this, you can ignore this mail.</p></body></html>`,
		name, link,
	)
}
