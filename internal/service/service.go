package service

import (
	"context"
	"time"

	"roomreserve-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, string, error) // user, access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type UserService interface {
	Register(ctx context.Context, username, password, name, email string, role domain.UserRole, registrationNumber string) (*domain.User, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type CatalogService interface {
	ListResources(ctx context.Context) ([]domain.Resource, error)
	GetResource(ctx context.Context, id int32) (*domain.Resource, error)
	FindResourceByName(ctx context.Context, name string) (*domain.Resource, error)
	AddResource(ctx context.Context, res *domain.Resource) error
	RemoveResource(ctx context.Context, id int32) error
	AddFeature(ctx context.Context, id int32, tag string) (*domain.Resource, error)
	RemoveFeature(ctx context.Context, id int32, tag string) (*domain.Resource, error)
	FindAvailable(ctx context.Context, startsAt, endsAt time.Time, minCapacity int32) ([]domain.Resource, error)
}

type ReservationService interface {
	Request(ctx context.Context, requesterID, resourceID int32, startsAt, endsAt time.Time, purpose string) (*domain.Reservation, error)
	Confirm(ctx context.Context, id int32) (*domain.Reservation, error)
	Reject(ctx context.Context, id int32, reason string) (*domain.Reservation, error)
	Cancel(ctx context.Context, userID int32, isAdmin bool, id int32, reason string) (*domain.Reservation, error)
	Delete(ctx context.Context, id int32) error
	Get(ctx context.Context, userID int32, isAdmin bool, id int32) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListPending(ctx context.Context) ([]domain.Reservation, error)
	ListMine(ctx context.Context, userID int32) ([]domain.Reservation, error)
	ListByResource(ctx context.Context, resourceID int32) ([]domain.Reservation, error)
}

type EmailService interface {
	SendReservationRequestedNotification(ctx context.Context, adminEmail, requesterName, resourceName, slot string) error
	SendReservationDecisionNotification(ctx context.Context, email, name, resourceName, slot, decision, reason string) error
	SendPendingSummary(ctx context.Context, adminEmail string, pendingCount int) error
}
