package postgres

import (
	"context"
	"database/sql"
	"errors"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/repository"

	"github.com/lib/pq"
)

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (name, kind, location, capacity, model, serial_number, features)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, res.Name, res.Kind, res.Location, res.Capacity, res.Model, res.SerialNumber, pq.Array(res.Features)).Scan(&res.ID)
}

func (r *resourceRepository) GetByID(ctx context.Context, id int32) (*domain.Resource, error) {
	res := &domain.Resource{}
	query := `SELECT id, name, kind, location, capacity, COALESCE(model, ''), COALESCE(serial_number, ''), features FROM resources WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.Name, &res.Kind, &res.Location, &res.Capacity, &res.Model, &res.SerialNumber, pq.Array(&res.Features))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) GetByName(ctx context.Context, name string) (*domain.Resource, error) {
	res := &domain.Resource{}
	query := `SELECT id, name, kind, location, capacity, COALESCE(model, ''), COALESCE(serial_number, ''), features FROM resources WHERE LOWER(name) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&res.ID, &res.Name, &res.Kind, &res.Location, &res.Capacity, &res.Model, &res.SerialNumber, pq.Array(&res.Features))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	query := `UPDATE resources SET name=$1, location=$2, capacity=$3, model=$4, serial_number=$5, features=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, res.Name, res.Location, res.Capacity, res.Model, res.SerialNumber, pq.Array(res.Features), res.ID)
	return err
}

func (r *resourceRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	return err
}

func (r *resourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	query := `SELECT id, name, kind, location, capacity, COALESCE(model, ''), COALESCE(serial_number, ''), features FROM resources ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Kind, &res.Location, &res.Capacity, &res.Model, &res.SerialNumber, pq.Array(&res.Features)); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
