package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthConfig carries the operator credential settings.
type AdminAuthConfig struct {
	// PasswordHash is the bcrypt hash of the operator password.
	PasswordHash string
	// Secret signs the issued tokens.
	Secret string
	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration
}

// AdminAuthService issues and validates the operator token guarding the
// reload and install endpoints.
type AdminAuthService struct {
	cfg    AdminAuthConfig
	logger *logrus.Logger
}

func NewAdminAuthService(cfg AdminAuthConfig, logger *logrus.Logger) *AdminAuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	return &AdminAuthService{cfg: cfg, logger: logger}
}

func (s *AdminAuthService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		if s.logger != nil {
			s.logger.Warn("admin login rejected")
		}
		return "", fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("admin token issued")
	}
	return signed, nil
}

func (s *AdminAuthService) ValidateToken(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
