package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/chatkeeper/internal/common"
	"github.com/dmitrijs2005/chatkeeper/internal/inference"
	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
	"github.com/dmitrijs2005/chatkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) setSessionCookie(c *gin.Context, creds *services.Credentials) {
	maxAge := int(time.Until(creds.SessionExpires).Seconds())
	c.SetCookie(SessionCookieName, creds.SessionToken, maxAge, "/", "", false, true)
}

func (s *Server) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	user, creds, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
			return
		}
		s.logger.Error(c.Request.Context(), "signup failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.setSessionCookie(c, creds)
	c.JSON(http.StatusOK, gin.H{
		"message":      "signup successful",
		"username":     user.Username,
		"access_token": creds.AccessToken,
	})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	creds, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.setSessionCookie(c, creds)
	c.JSON(http.StatusOK, gin.H{
		"message":      "login successful",
		"access_token": creds.AccessToken,
	})
}

func (s *Server) logout(c *gin.Context) {
	// bearer-authenticated requests carry no session row to delete
	if token := c.GetString(sessionTokenKey); token != "" {
		if err := s.users.Logout(c.Request.Context(), token); err != nil {
			s.logger.Error(c.Request.Context(), "logout failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	exchange, err := s.chats.SendMessage(c.Request.Context(), c.GetString(userIDKey), req.Message)
	if err != nil {
		if errors.Is(err, inference.ErrCompletion) {
			s.logger.Error(c.Request.Context(), "completion failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error communicating with model"})
			return
		}
		s.logger.Error(c.Request.Context(), "chat failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": exchange.BotResponse})
}

func (s *Server) history(c *gin.Context) {
	exchanges, err := s.chats.History(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		s.logger.Error(c.Request.Context(), "history failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if exchanges == nil {
		exchanges = []*models.Exchange{}
	}
	c.JSON(http.StatusOK, exchanges)
}
