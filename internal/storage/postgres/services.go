package postgres

import (
	"context"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// --- ServiceRepository implementation ---

func (r *serviceRepository) Create(ctx context.Context, s model.ServiceType) (*model.ServiceType, error) {
	const query = `INSERT INTO services (id, name, price) VALUES ($1, $2, $3)`
	if _, err := r.storage.pool.Exec(ctx, query, s.ID, s.Name, s.Price); err != nil {
		return nil, mapError(err, nil)
	}
	return &s, nil
}

func (r *serviceRepository) Update(ctx context.Context, s model.ServiceType) (*model.ServiceType, error) {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE services SET name=$2, price=$3 WHERE id=$1`, s.ID, s.Name, s.Price)
	if err != nil {
		return nil, mapError(err, nil)
	}
	if err := expectAffected(tag); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return mapError(err, domainErrors.ErrServiceInUse)
	}
	return expectAffected(tag)
}

func (r *serviceRepository) List(ctx context.Context) ([]model.ServiceType, error) {
	return listServices(ctx, r.storage.pool)
}

func listServices(ctx context.Context, q querier) ([]model.ServiceType, error) {
	rows, err := q.Query(ctx, `SELECT id, name, price FROM services ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ServiceType
	for rows.Next() {
		var s model.ServiceType
		if err := rows.Scan(&s.ID, &s.Name, &s.Price); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
