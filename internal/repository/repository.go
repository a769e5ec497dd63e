package repository

import (
	"context"

	"roomreserve-backend/internal/domain"
)

type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) error
	GetByID(ctx context.Context, id int32) (*domain.Resource, error)
	GetByName(ctx context.Context, name string) (*domain.Resource, error)
	Update(ctx context.Context, res *domain.Resource) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Resource, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	ListAdministrators(ctx context.Context) ([]domain.User, error)
}

// ReservationRepository persists individual reservations. Reservation ids are
// assigned by the ledger, never by the database, so inserts carry an explicit
// id. The write methods double as the ledger's Store collaborator.
type ReservationRepository interface {
	InsertReservation(ctx context.Context, r *domain.Reservation) error
	UpdateReservation(ctx context.Context, r *domain.Reservation) error
	DeleteReservation(ctx context.Context, id int32) error
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
}
