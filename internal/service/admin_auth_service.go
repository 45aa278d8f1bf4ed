package service

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("admin auth not configured")
)

const (
	adminSubject = "admin"
	loginWindow  = 10 * time.Minute
)

// AdminAuthService valida la clave de administracion contra un hash bcrypt.
type AdminAuthService struct {
	logger       *zap.Logger
	passwordHash []byte
	jwt          *JWTService
	limiter      RateLimiter
}

func NewAdminAuthService(logger *zap.Logger, passwordHash string, jwtSvc *JWTService, limiter RateLimiter) *AdminAuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = NewMemoryRateLimiter(loginWindow, 5)
	}
	return &AdminAuthService{
		logger:       logger,
		passwordHash: []byte(strings.TrimSpace(passwordHash)),
		jwt:          jwtSvc,
		limiter:      limiter,
	}
}

// Enabled indica si hay hash y secreto JWT configurados.
func (s *AdminAuthService) Enabled() bool {
	return s != nil && len(s.passwordHash) > 0 && s.jwt != nil && len(s.jwt.secret) > 0
}

// Login devuelve un token de administrador si la clave coincide.
// clientKey se usa para limitar intentos.
func (s *AdminAuthService) Login(clientKey, password string) (AccessToken, error) {
	if !s.Enabled() {
		return AccessToken{}, ErrAuthDisabled
	}
	if !s.limiter.Allow("login:" + clientKey) {
		return AccessToken{}, ErrRateLimited
	}
	if strings.TrimSpace(password) == "" {
		return AccessToken{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("admin login rejected", zap.String("client", clientKey))
		return AccessToken{}, ErrInvalidCredentials
	}
	return s.jwt.Issue(adminSubject, RoleAdmin)
}
