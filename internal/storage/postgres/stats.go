package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// --- StatsRepository implementation ---

func (r *statsRepository) Upsert(ctx context.Context, snapshots []model.MetricSnapshot) error {
	const query = `INSERT INTO dashboard_stats (metric_name, metric_value, metric_date)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (metric_name, metric_date) DO UPDATE
                   SET metric_value = EXCLUDED.metric_value, updated_at = NOW()`
	if len(snapshots) == 0 {
		return nil
	}
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, s := range snapshots {
			if _, err := tx.Exec(ctx, query, s.Name, s.Value, s.Date); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *statsRepository) History(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error) {
	const query = `SELECT metric_name, metric_value, metric_date FROM dashboard_stats
                   WHERE metric_name=$1 AND metric_date BETWEEN $2 AND $3
                   ORDER BY metric_date`
	rows, err := r.storage.pool.Query(ctx, query, name, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MetricSnapshot
	for rows.Next() {
		var s model.MetricSnapshot
		if err := rows.Scan(&s.Name, &s.Value, &s.Date); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
