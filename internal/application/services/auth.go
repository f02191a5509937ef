package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"exam-registry-api/internal/application/ports"
	"exam-registry-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

// AuthService issues admin tokens against a single bcrypt hash from config.
// Exam takers are records, not accounts, so there is no per-user login.
type AuthService struct {
	jwtService        *jwt.Service
	adminPasswordHash string
}

func NewAuthService(
	jwtService *jwt.Service,
	adminPasswordHash string,
) ports.Auth {
	return &AuthService{
		jwtService:        jwtService,
		adminPasswordHash: adminPasswordHash,
	}
}

func (as *AuthService) GenerateToken(requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(as.adminPasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT("admin", "admin", time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
