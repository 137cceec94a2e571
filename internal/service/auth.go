package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"staynest-admin-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// authService authenticates the single configured admin principal.
type authService struct {
	adminEmail        string
	adminPasswordHash string
	tokens            security.TokenManager
}

func NewAuthService(adminEmail, adminPasswordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		tokens:            tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.EqualFold(email, s.adminEmail) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(s.adminEmail)
}
