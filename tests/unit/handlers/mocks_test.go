package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"roomreserve-backend/internal/domain"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password, name, email string, role domain.UserRole, registrationNumber string) (*domain.User, error) {
	args := m.Called(ctx, username, password, name, email, role, registrationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ResetPassword(ctx context.Context, username, newPassword string) error {
	args := m.Called(ctx, username, newPassword)
	return args.Error(0)
}
func (m *MockUserService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListResources(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resource), args.Error(1)
}
func (m *MockCatalogService) GetResource(ctx context.Context, id int32) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockCatalogService) FindResourceByName(ctx context.Context, name string) (*domain.Resource, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockCatalogService) AddResource(ctx context.Context, res *domain.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockCatalogService) RemoveResource(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) AddFeature(ctx context.Context, id int32, tag string) (*domain.Resource, error) {
	args := m.Called(ctx, id, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockCatalogService) RemoveFeature(ctx context.Context, id int32, tag string) (*domain.Resource, error) {
	args := m.Called(ctx, id, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockCatalogService) FindAvailable(ctx context.Context, startsAt, endsAt time.Time, minCapacity int32) ([]domain.Resource, error) {
	args := m.Called(ctx, startsAt, endsAt, minCapacity)
	return args.Get(0).([]domain.Resource), args.Error(1)
}

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Request(ctx context.Context, requesterID, resourceID int32, startsAt, endsAt time.Time, purpose string) (*domain.Reservation, error) {
	args := m.Called(ctx, requesterID, resourceID, startsAt, endsAt, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Confirm(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Reject(ctx context.Context, id int32, reason string) (*domain.Reservation, error) {
	args := m.Called(ctx, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, userID int32, isAdmin bool, id int32, reason string) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, isAdmin, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationService) Get(ctx context.Context, userID int32, isAdmin bool, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, isAdmin, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListPending(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListMine(ctx context.Context, userID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListByResource(ctx context.Context, resourceID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
