package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/security"
	"roomreserve-backend/internal/service"
)

const testSecret = "unit-test-secret-at-least-32-chars!!"

func newTokens() security.TokenManager {
	return security.NewTokenManager(testSecret, 15*time.Minute, 24*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		alice := &domain.User{
			ID:           7,
			Username:     "alice",
			PasswordHash: hashOf(t, "s3cret"),
			Role:         domain.UserRoleStudent,
		}
		userRepo.On("GetByUsername", ctx, "alice").Return(alice, nil)

		user, access, refresh, err := svc.Login(ctx, "alice", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, alice.ID, claims.UserID)
		assert.Equal(t, string(domain.UserRoleStudent), claims.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		alice := &domain.User{ID: 7, Username: "alice", PasswordHash: hashOf(t, "s3cret")}
		userRepo.On("GetByUsername", ctx, "alice").Return(alice, nil)

		_, _, _, err := svc.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown user maps to invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()
	alice := &domain.User{ID: 7, Username: "alice", Role: domain.UserRoleStudent}

	t.Run("Success re-reads the role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(alice.ID, alice.Username)
		assert.NoError(t, err)

		promoted := &domain.User{ID: 7, Username: "alice", Role: domain.UserRoleAdministrator}
		userRepo.On("GetByID", ctx, alice.ID).Return(promoted, nil)

		access, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, string(domain.UserRoleAdministrator), claims.Role)
	})

	t.Run("Access token is refused", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		access, err := tokens.GenerateAccessToken(alice.ID, alice.Username, string(alice.Role))
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		_, err := svc.Refresh(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success hashes the password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByUsername", ctx, "bob").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, "bob", "hunter2", "Bob", "bob@example.com", domain.UserRoleStudent, "2026-0042")
		assert.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.NotEqual(t, "hunter2", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
	})

	t.Run("Duplicate username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		existing := &domain.User{ID: 3, Username: "bob"}
		userRepo.On("GetByUsername", ctx, "bob").Return(existing, nil)

		_, err := svc.Register(ctx, "bob", "hunter2", "Bob", "", domain.UserRoleStudent, "")
		assert.ErrorIs(t, err, domain.ErrUserConflict)
	})

	t.Run("Blank username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		_, err := svc.Register(ctx, "   ", "hunter2", "", "", domain.UserRoleStudent, "")
		assert.Error(t, err)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := service.NewUserService(userRepo)

	bob := &domain.User{ID: 3, Username: "bob"}
	userRepo.On("GetByUsername", ctx, "bob").Return(bob, nil)
	userRepo.On("UpdatePassword", ctx, bob.ID, mock.AnythingOfType("string")).Return(nil)

	assert.NoError(t, svc.ResetPassword(ctx, "bob", "newpass"))
	userRepo.AssertExpectations(t)
}
