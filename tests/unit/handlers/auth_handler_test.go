package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/service"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		alice := &domain.User{ID: 7, Username: "alice", Role: domain.UserRoleStudent}
		f.authSvc.On("Login", mock.Anything, "alice", "s3cret").
			Return(alice, "access-token", "refresh-token", nil)

		rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"username": "alice",
			"password": "s3cret",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			User         *domain.User `json:"user"`
			AccessToken  string       `json:"access_token"`
			RefreshToken string       `json:"refresh_token"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "access-token", got.AccessToken)
		assert.Equal(t, "alice", got.User.Username)
	})

	t.Run("Bad credentials map to 401", func(t *testing.T) {
		f := newFixture()
		f.authSvc.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, "", "", service.ErrInvalidCredentials)

		rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Defaults to student role", func(t *testing.T) {
		f := newFixture()
		bob := &domain.User{ID: 8, Username: "bob", Role: domain.UserRoleStudent}
		f.userSvc.On("Register", mock.Anything, "bob", "hunter2", "Bob", "bob@example.com", domain.UserRoleStudent, "").
			Return(bob, nil)

		rec := f.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"username": "bob",
			"password": "hunter2",
			"name":     "Bob",
			"email":    "bob@example.com",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		f.userSvc.AssertExpectations(t)
	})

	t.Run("Unknown role maps to 400", func(t *testing.T) {
		f := newFixture()
		rec := f.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"username": "bob",
			"password": "hunter2",
			"role":     "SUPERUSER",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.userSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate username maps to 409", func(t *testing.T) {
		f := newFixture()
		f.userSvc.On("Register", mock.Anything, "bob", "hunter2", "", "", domain.UserRoleStudent, "").
			Return(nil, domain.ErrUserConflict)

		rec := f.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"username": "bob",
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	f := newFixture()
	f.authSvc.On("Refresh", mock.Anything, "refresh-token").Return("new-access", nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{
		"refresh_token": "refresh-token",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	f := newFixture()
	f.userSvc.On("ResetPassword", mock.Anything, "alice", "newpass").Return(nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]any{
		"username":     "alice",
		"new_password": "newpass",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.userSvc.AssertExpectations(t)
}
