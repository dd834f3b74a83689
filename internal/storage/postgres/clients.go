package postgres

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// --- ClientRepository implementation ---

func (r *clientRepository) Create(ctx context.Context, c model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (id, name, email, phone, address, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.storage.pool.Exec(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, mapError(err, nil)
	}
	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, c model.Client) (*model.Client, error) {
	const query = `UPDATE clients SET name=$2, email=$3, phone=$4, address=$5, updated_at=$6
                   WHERE id=$1 RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.Address, c.UpdatedAt).Scan(&c.CreatedAt)
	if err != nil {
		return nil, mapError(err, nil)
	}
	return &c, nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return mapError(err, domainErrors.ErrClientHasOrders)
	}
	return expectAffected(tag)
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	const query = `SELECT id, name, email, phone, address, created_at, updated_at
                   FROM clients ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
