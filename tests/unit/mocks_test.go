package unit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"roomreserve-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}
func (m *MockUserRepo) ListAdministrators(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockResourceRepo
type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockResourceRepo) GetByID(ctx context.Context, id int32) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) GetByName(ctx context.Context, name string) (*domain.Resource, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) Update(ctx context.Context, res *domain.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockResourceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resource), args.Error(1)
}

// MockReservationRepo also satisfies the ledger's Store interface, so service
// tests can seed a real ledger over it.
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) InsertReservation(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) UpdateReservation(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) DeleteReservation(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationRepo) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationRequestedNotification(ctx context.Context, adminEmail, requesterName, resourceName, slot string) error {
	args := m.Called(ctx, adminEmail, requesterName, resourceName, slot)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationDecisionNotification(ctx context.Context, email, name, resourceName, slot, decision, reason string) error {
	args := m.Called(ctx, email, name, resourceName, slot, decision, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingSummary(ctx context.Context, adminEmail string, pendingCount int) error {
	args := m.Called(ctx, adminEmail, pendingCount)
	return args.Error(0)
}
