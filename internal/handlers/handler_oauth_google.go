package handlers

import (
	"log/slog"
	"net/http"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/CareSetu/health_portal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler drives the Google sign-in handoff.
type googleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	authService  portssvc.AuthSvcFacade
	cfg          *config.Config
}

func newGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade, cfg *config.Config) *googleOAuthHandler {
	return &googleOAuthHandler{
		oauthService: os,
		userService:  us,
		authService:  as,
		cfg:          cfg,
	}
}

// registerGoogleOAuthRoutes sets up the routes for Google sign-in.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Auth, cfg)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login-url", h.loginURL)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// loginURL godoc
// @Summary Google login URL
// @Description Returns the Google consent URL plus the CSRF state the frontend must echo back.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	c.JSON(http.StatusOK, dto.GoogleLoginURLResponse{
		URL:   h.oauthService.GetGoogleLoginURL(c.Request.Context(), state),
		State: state,
	})
}

// exchangeCode godoc
// @Summary Complete Google login
// @Description Exchanges the authorization code, verifies the Google identity
// @Description and establishes a portal session for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("OAuth code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Warn("OAuth token response missing id_token")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google identity"})
		return
	}

	info := &domain.GoogleUserInfo{ID: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := payload.Claims["email_verified"].(bool); ok {
		info.VerifiedEmail = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		info.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		info.Picture = v
	}

	if !info.VerifiedEmail || info.Email == "" {
		// An unverified Google email must not be allowed to claim an existing
		// local account with the same address.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.userService.GetOrCreateGoogleUser(c.Request.Context(), info)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete Google login"})
		return
	}

	session, err := h.authService.EstablishSession(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to establish session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete Google login"})
		return
	}

	setSessionCookie(c, h.cfg, session.ID)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
