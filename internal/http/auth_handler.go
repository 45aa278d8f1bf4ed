package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socionics-wiki/internal/service"
)

type AuthHandler struct {
	logger *zap.Logger
	auth   *service.AdminAuthService
}

func NewAuthHandler(logger *zap.Logger, auth *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{logger: logger, auth: auth}
}

// IssueToken maneja POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Login(c.ClientIP(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin auth not configured"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		default:
			h.logger.Error("issue token failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		}
		return
	}

	c.JSON(http.StatusOK, token)
}
