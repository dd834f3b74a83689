package postgres

import (
	"context"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// --- RackRepository implementation ---

func (r *rackRepository) List(ctx context.Context) ([]model.Rack, error) {
	const query = `SELECT rack_number, location, description, capacity, status, updated_at
                   FROM racks ORDER BY rack_number`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Rack
	for rows.Next() {
		var rack model.Rack
		if err := rows.Scan(&rack.Number, &rack.Location, &rack.Description, &rack.Capacity, &rack.Status, &rack.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rack)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *rackRepository) Upsert(ctx context.Context, rack model.Rack) (*model.Rack, error) {
	const query = `INSERT INTO racks (rack_number, location, description, capacity, status)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (rack_number) DO UPDATE
                   SET location = EXCLUDED.location,
                       description = EXCLUDED.description,
                       capacity = EXCLUDED.capacity,
                       status = EXCLUDED.status,
                       updated_at = NOW()
                   RETURNING updated_at`
	err := r.storage.pool.QueryRow(ctx, query, rack.Number, rack.Location, rack.Description, rack.Capacity, rack.Status).Scan(&rack.UpdatedAt)
	if err != nil {
		return nil, mapError(err, nil)
	}
	return &rack, nil
}
