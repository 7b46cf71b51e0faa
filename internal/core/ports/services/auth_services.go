package services

import (
	"context"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	"github.com/CareSetu/health_portal_app/internal/dto"
)

// SessionStore is the keyed storage behind authenticated sessions. It is
// injected into the auth service so the backing store (in-memory map, external
// cache) stays swappable.
type SessionStore interface {
	// Create establishes a new session for the user and returns it.
	Create(ctx context.Context, userID string) (*domain.Session, error)

	// Get resolves a session ID. Returns (nil, nil) when the session is absent
	// or expired.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)

	// Destroy removes a session. Destroying an absent session is not an error.
	Destroy(ctx context.Context, sessionID string) error
}

// AuthSvcFacade verifies credentials and manages session lifecycle.
type AuthSvcFacade interface {
	// Register creates a local account (hashing before any persistence) and
	// establishes a session for it. The welcome mail is fire-and-forget.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Session, error)

	// Login verifies email/password and establishes a session.
	Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)

	// EstablishSession creates a session for an already-verified identity
	// (federated login path).
	EstablishSession(ctx context.Context, userID string) (*domain.Session, error)

	// Logout destroys the server-side session. The caller must only clear the
	// client cookie once this returns nil.
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser resolves a session ID to an identity, or (nil, nil) when the
	// session is absent or expired.
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}
