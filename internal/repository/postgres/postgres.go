package postgres

import (
	"database/sql"

	"roomreserve-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ResourceRepository
	repository.UserRepository
	repository.ReservationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ResourceRepository:    NewResourceRepository(db),
		UserRepository:        NewUserRepository(db),
		ReservationRepository: NewReservationRepository(db),
	}
}
