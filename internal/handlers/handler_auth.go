package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/CareSetu/health_portal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles authentication related requests.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	resetService portssvc.PasswordResetSvcFacade
	cfg          *config.Config
}

func newAuthHandler(as portssvc.AuthSvcFacade, rs portssvc.PasswordResetSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:  as,
		resetService: rs,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.PasswordReset, cfg)

	// 5 requests per minute per IP on the credential-guessing surfaces.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.currentUser)
		auth.POST("/password-reset/request", limitMiddleware, h.requestPasswordReset)
		auth.POST("/password-reset/redeem", h.redeemPasswordReset)
	}
}

// setSessionCookie hands the opaque session ID to the client.
func setSessionCookie(c *gin.Context, cfg *config.Config, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.SessionCookieName, sessionID, int(cfg.SessionTTL.Seconds()), "/", "", cfg.IsProduction, true)
}

// clearSessionCookie instructs the client to discard the session cookie.
func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.SessionCookieName, "", -1, "/", "", cfg.IsProduction, true)
}

// register godoc
// @Summary Register new user
// @Description Creates a new account and establishes a session for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, session, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An account with this email already exists"})
		default:
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		}
		return
	}

	setSessionCookie(c, h.cfg, session.ID)
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary User login
// @Description Verifies credentials and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Not-found, wrong password and external-auth accounts all present the
		// same message so the response doesn't enumerate accounts.
		switch {
		case errors.Is(err, apperrors.ErrNotFound),
			errors.Is(err, apperrors.ErrUnauthorized),
			errors.Is(err, apperrors.ErrExternalAuthOnly):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		default:
			logger.Error("Login failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		}
		return
	}

	setSessionCookie(c, h.cfg, session.ID)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// logout godoc
// @Summary User logout
// @Description Destroys the server-side session and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, err := c.Cookie(h.cfg.SessionCookieName)
	if err != nil || sessionID == "" {
		// Nothing to destroy; still clear any stray cookie.
		clearSessionCookie(c, h.cfg)
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		// The cookie must stay in place: clearing it here would leave a live
		// server-side session with no client reference to destroy it.
		logger.Error("Failed to destroy session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log out"})
		return
	}

	clearSessionCookie(c, h.cfg)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// currentUser godoc
// @Summary Current identity
// @Description Resolves the session cookie to the authenticated identity, or null.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/me [get]
func (h *authHandler) currentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, err := c.Cookie(h.cfg.SessionCookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to resolve session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, gin.H{"user": resp})
}

// requestPasswordReset godoc
// @Summary Request password reset
// @Description Issues a reset token and mails the reset link. The response is
// @Description identical whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RequestResetRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/password-reset/request [post]
func (h *authHandler) requestPasswordReset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	genericMsg := dto.MessageResponse{Message: "If an account exists for this email, a reset link has been sent."}

	err := h.resetService.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrExternalAuthOnly):
			// Masked: same body as success so the endpoint doesn't enumerate accounts.
			logger.Warn("Reset requested for ineligible account", slog.String("reason", err.Error()))
			c.JSON(http.StatusOK, genericMsg)
		case errors.Is(err, apperrors.ErrMailDelivery):
			logger.Error("Reset mail delivery failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send reset mail"})
		default:
			logger.Error("Failed to request password reset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to request password reset"})
		}
		return
	}

	c.JSON(http.StatusOK, genericMsg)
}

// redeemPasswordReset godoc
// @Summary Redeem password reset
// @Description Validates the reset token and commits the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param redeem body dto.RedeemResetRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/password-reset/redeem [post]
func (h *authHandler) redeemPasswordReset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RedeemResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.resetService.RedeemReset(c.Request.Context(), req.Email, req.Token, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrUnauthorized):
			// Uniform message: wrong token and unknown account are indistinguishable.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired reset token"})
		default:
			logger.Error("Failed to redeem password reset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}
