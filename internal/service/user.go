package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new account. Username uniqueness is case-insensitive.
func (s *userService) Register(ctx context.Context, username, password, name, email string, role domain.UserRole, registrationNumber string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUserConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:           username,
		PasswordHash:       hash,
		Name:               name,
		Email:              email,
		Role:               role,
		RegistrationNumber: registrationNumber,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password is required")
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, hash)
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
