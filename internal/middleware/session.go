package middleware

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware creates a Gin middleware handler that resolves the
// session cookie against the session store and injects the user ID into the
// request context. Requests without a live session are rejected.
func SessionAuthMiddleware(store portssvc.SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			logger.Warn("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		session, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			logger.Error("Session store lookup failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if session == nil {
			logger.Warn("Session absent or expired")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}

		// Store the user ID in the request context and enrich the logger
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, session.UserID)
		enrichedLogger := logger.With(slog.String("user_id", session.UserID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
