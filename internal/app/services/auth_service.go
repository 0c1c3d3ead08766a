package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models/dto"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
	"github.com/sorawit/coursereg/internal/pkg/auth"
)

const adminRole = "admin"

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(username, password string) (*dto.AuthResponse, error)
}

// authServiceImpl implements the AuthService interface. There is a single
// admin account whose credentials come from configuration; the plaintext
// password is hashed once at startup and discarded.
type authServiceImpl struct {
	username     string
	passwordHash string
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService hashes the configured admin password and returns the
// service.
func NewAuthService(username, password string, jwtService *auth.JWTService, logger zerolog.Logger) (AuthService, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authServiceImpl{
		username:     username,
		passwordHash: hash,
		jwtService:   jwtService,
		logger:       logger,
	}, nil
}

// Login checks the credentials and issues an access token
func (s *authServiceImpl) Login(username, password string) (*dto.AuthResponse, error) {
	if username != s.username || !auth.CheckPassword(s.passwordHash, password) {
		s.logger.Warn().Str("username", username).Msg("Admin login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(username, adminRole)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("Admin login succeeded")
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Username: username,
		Role:     adminRole,
	}, nil
}
