package postgres

import (
	"context"
	"database/sql"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) InsertReservation(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (id, resource_id, resource_name, requester_id, requester_name, starts_at, ends_at, purpose, status, observation, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, rv.ID, rv.ResourceID, rv.ResourceName, rv.RequesterID, rv.RequesterName, rv.StartsAt, rv.EndsAt, rv.Purpose, rv.Status, rv.Observation, rv.CreatedOn)
	return err
}

func (r *reservationRepository) UpdateReservation(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations SET status=$1, observation=$2, starts_at=$3, ends_at=$4, purpose=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rv.Status, rv.Observation, rv.StartsAt, rv.EndsAt, rv.Purpose, rv.ID)
	return err
}

func (r *reservationRepository) DeleteReservation(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	return err
}

func (r *reservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT id, resource_id, resource_name, requester_id, requester_name, starts_at, ends_at, purpose, status, COALESCE(observation, ''), created_on
	          FROM reservations ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := rows.Scan(&rv.ID, &rv.ResourceID, &rv.ResourceName, &rv.RequesterID, &rv.RequesterName, &rv.StartsAt, &rv.EndsAt, &rv.Purpose, &rv.Status, &rv.Observation, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reservations = append(reservations, rv)
	}
	return reservations, rows.Err()
}
