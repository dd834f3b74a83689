package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
)

const orderColumns = `id, number, client_id, status, payment_status, amount_paid, notes,
                      received_at, delivery_date, delivered_at, created_at, updated_at`

const itemColumns = `id, order_id, brand, details, service_id, rack, photo_key`

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (` + orderColumns + `)
                         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertOrder,
			order.ID, order.Number, order.ClientID, order.Status, order.PaymentStatus, order.AmountPaid, order.Notes,
			order.ReceivedAt, order.DeliveryDate, order.DeliveredAt, order.CreatedAt, order.UpdatedAt)
		if err != nil {
			return err
		}
		return insertItems(ctx, tx, order)
	})
	if err != nil {
		return nil, mapError(err, itemReferenceError(err))
	}
	return &order, nil
}

func (r *orderRepository) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := getOrder(ctx, r.storage.pool, id, false)
	if err != nil {
		return nil, mapError(err, nil)
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	itemRows, err := r.storage.pool.Query(ctx, `SELECT `+itemColumns+` FROM order_items ORDER BY order_id, position`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		orderID, item, err := scanItem(itemRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return mapError(err, nil)
	}
	return expectAffected(tag)
}

// Mutate locks the order row, hands it to fn together with the catalog seen
// by the same transaction and persists the result. Line items are rewritten
// so rack releases and edits are applied atomically with the status.
func (r *orderRepository) Mutate(ctx context.Context, id uuid.UUID, fn repository.OrderMutation) (*model.Order, *model.StatusChange, error) {
	const updateOrder = `UPDATE orders SET status=$2, payment_status=$3, amount_paid=$4, notes=$5,
                         delivery_date=$6, delivered_at=$7, updated_at=$8 WHERE id=$1`
	const insertHistory = `INSERT INTO order_history (order_id, from_status, to_status, amount_collected, changed_at)
                           VALUES ($1, $2, $3, $4, $5)`

	var (
		order  *model.Order
		change *model.StatusChange
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if order, err = getOrder(ctx, tx, id, true); err != nil {
			return err
		}
		services, err := listServices(ctx, tx)
		if err != nil {
			return err
		}
		if change, err = fn(order, model.NewCatalog(services...)); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, updateOrder, order.ID, order.Status, order.PaymentStatus, order.AmountPaid,
			order.Notes, order.DeliveryDate, order.DeliveredAt, order.UpdatedAt); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, order.ID); err != nil {
			return err
		}
		if err := insertItems(ctx, tx, *order); err != nil {
			return err
		}
		if change != nil {
			if _, err := tx.Exec(ctx, insertHistory, change.OrderID, change.From, change.To, change.AmountCollected, change.ChangedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, mapError(err, itemReferenceError(err))
	}
	return order, change, nil
}

func (r *orderRepository) History(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error) {
	const query = `SELECT order_id, from_status, to_status, amount_collected, changed_at
                   FROM order_history WHERE order_id=$1 ORDER BY changed_at, id`
	rows, err := r.storage.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusChange
	for rows.Next() {
		var c model.StatusChange
		if err := rows.Scan(&c.OrderID, &c.From, &c.To, &c.AmountCollected, &c.ChangedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) SetPhoto(ctx context.Context, orderID, itemID uuid.UUID, key string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE order_items SET photo_key=$3 WHERE order_id=$1 AND id=$2`, orderID, itemID, key)
	if err != nil {
		return err
	}
	return expectAffected(tag)
}

func getOrder(ctx context.Context, q querier, id uuid.UUID, lock bool) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	if lock {
		query += ` FOR UPDATE`
	}
	order, err := scanOrder(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, `SELECT `+itemColumns+` FROM order_items WHERE order_id=$1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		_, item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return order, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, order model.Order) error {
	const query = `INSERT INTO order_items (id, order_id, position, brand, details, service_id, rack, photo_key, released_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	var released *time.Time
	if !order.Status.HoldsRacks() {
		at := order.UpdatedAt
		released = &at
	}
	for i, item := range order.Items {
		if _, err := tx.Exec(ctx, query, item.ID, order.ID, i, item.Brand, item.Details, item.ServiceID, item.Rack, item.PhotoKey, released); err != nil {
			return err
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Number, &o.ClientID, &o.Status, &o.PaymentStatus, &o.AmountPaid, &o.Notes,
		&o.ReceivedAt, &o.DeliveryDate, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanItem(row pgx.Row) (uuid.UUID, model.LineItem, error) {
	var (
		orderID uuid.UUID
		item    model.LineItem
	)
	err := row.Scan(&item.ID, &orderID, &item.Brand, &item.Details, &item.ServiceID, &item.Rack, &item.PhotoKey)
	return orderID, item, err
}

// itemReferenceError names the missing row behind a foreign key violation on order writes.
func itemReferenceError(err error) error {
	switch constraintOf(err) {
	case "orders_client_id_fkey":
		return domainErrors.ErrUnknownClient
	case "order_items_service_id_fkey":
		return domainErrors.ErrUnknownService
	}
	return nil
}
