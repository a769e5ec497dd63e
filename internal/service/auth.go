package service

import (
	"context"
	"errors"

	"roomreserve-backend/internal/repository"
	"roomreserve-backend/internal/security"

	"golang.org/x/crypto/bcrypt"

	"roomreserve-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", security.ErrWrongTokenType
	}

	// Role is re-read so a refresh cannot extend a stale role claim.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role))
}

// hashPassword is shared with the user service.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
