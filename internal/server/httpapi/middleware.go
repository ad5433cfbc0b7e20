package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/chatkeeper/internal/common"
	"github.com/dmitrijs2005/chatkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey       = "userID"
	sessionTokenKey = "sessionToken"
)

// requestLogger tags every request with a generated request id and logs
// method, path, status, and duration after the handler chain completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// readyGate rejects API traffic until storage initialization has completed.
func (s *Server) readyGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.ready.Load() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage initializing"})
			return
		}
		c.Next()
	}
}

// sessionAuth guards protected routes. The session cookie is checked first;
// an Authorization bearer token is accepted as a fallback for API clients.
// Requests with no credential at all are rejected without touching storage.
func (s *Server) sessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			userID, authErr := s.users.Authenticate(c.Request.Context(), token)
			if authErr != nil {
				// a store outage is not a reason to log the user out
				if errors.Is(authErr, common.ErrorInternal) {
					s.logger.Error(c.Request.Context(), "session lookup failed", "error", authErr.Error())
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
					return
				}
				c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
				return
			}
			c.Set(userIDKey, userID)
			c.Set(sessionTokenKey, token)
			c.Next()
			return
		}

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, "Bearer "), s.jwtSecret)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
				return
			}
			c.Set(userIDKey, userID)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
	}
}
