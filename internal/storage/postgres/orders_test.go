package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

var (
	orderCols = []string{"id", "number", "client_id", "status", "payment_status", "amount_paid", "notes",
		"received_at", "delivery_date", "delivered_at", "created_at", "updated_at"}
	itemCols = []string{"id", "order_id", "brand", "details", "service_id", "rack", "photo_key"}
)

func sampleOrder(now time.Time) model.Order {
	return model.Order{
		ID:            uuid.New(),
		Number:        "ORD-1",
		ClientID:      uuid.New(),
		Status:        model.OrderStatusReceived,
		PaymentStatus: model.PaymentStatusPending,
		AmountPaid:    decimal.Zero,
		ReceivedAt:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items: []model.LineItem{
			{ID: uuid.New(), Brand: "Nike", ServiceID: "clean", Rack: "A1"},
			{ID: uuid.New(), Brand: "Puma", ServiceID: "sole", Rack: "A2"},
		},
	}
}

func orderRow(rows *pgxmockv3.Rows, o model.Order) *pgxmockv3.Rows {
	return rows.AddRow(o.ID, o.Number, o.ClientID, o.Status, o.PaymentStatus, o.AmountPaid, o.Notes,
		o.ReceivedAt, nil, nil, o.CreatedAt, o.UpdatedAt)
}

func itemRows(o model.Order) *pgxmockv3.Rows {
	rows := pgxmockv3.NewRows(itemCols)
	for _, it := range o.Items {
		rows.AddRow(it.ID, o.ID, it.Brand, it.Details, it.ServiceID, it.Rack, it.PhotoKey)
	}
	return rows
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	ctx := context.Background()
	order := sampleOrder(time.Now())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(order.Items[0].ID, order.ID, 0, "Nike", "", "clean", "A1", "", (*time.Time)(nil)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(order.Items[1].ID, order.ID, 1, "Puma", "", "sole", "A2", "", (*time.Time)(nil)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()
	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: activeRackIndex, Detail: "Key (rack)=(A1) already exists."})
	mock.ExpectRollback()
	if _, err := repo.Create(ctx, order); !errors.Is(err, domainErrors.ErrRackOccupied) {
		t.Fatalf("expected rack occupied, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "orders_client_id_fkey"})
	mock.ExpectRollback()
	if _, err := repo.Create(ctx, order); !errors.Is(err, domainErrors.ErrUnknownClient) {
		t.Fatalf("expected unknown client, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "order_items_service_id_fkey"})
	mock.ExpectRollback()
	if _, err := repo.Create(ctx, order); !errors.Is(err, domainErrors.ErrUnknownService) {
		t.Fatalf("expected unknown service, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryGetAndList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	ctx := context.Background()

	now := time.Now()
	first := sampleOrder(now)
	second := sampleOrder(now.Add(time.Minute))
	second.Items = second.Items[:1]
	second.Items[0].Rack = "B1"

	mock.ExpectQuery("SELECT id, number, client_id").WithArgs(first.ID).
		WillReturnRows(orderRow(pgxmockv3.NewRows(orderCols), first))
	mock.ExpectQuery("FROM order_items WHERE order_id").WithArgs(first.ID).WillReturnRows(itemRows(first))
	got, err := repo.Get(ctx, first.ID)
	if err != nil || len(got.Items) != 2 || got.Items[1].Brand != "Puma" {
		t.Fatalf("unexpected order %+v err=%v", got, err)
	}

	missing := uuid.New()
	mock.ExpectQuery("SELECT id, number, client_id").WithArgs(missing).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Get(ctx, missing); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	items := pgxmockv3.NewRows(itemCols)
	for _, o := range []model.Order{first, second} {
		for _, it := range o.Items {
			items.AddRow(it.ID, o.ID, it.Brand, it.Details, it.ServiceID, it.Rack, it.PhotoKey)
		}
	}
	items.AddRow(uuid.New(), uuid.New(), "Orphan", "", "clean", "C1", "")
	mock.ExpectQuery("SELECT id, number, client_id").
		WillReturnRows(orderRow(orderRow(pgxmockv3.NewRows(orderCols), second), first))
	mock.ExpectQuery("FROM order_items ORDER BY order_id, position").WillReturnRows(items)

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != second.ID {
		t.Fatalf("unexpected orders %+v", orders)
	}
	if len(orders[0].Items) != 1 || len(orders[1].Items) != 2 {
		t.Fatalf("items not attached to their orders: %d %d", len(orders[0].Items), len(orders[1].Items))
	}

	mock.ExpectQuery("SELECT id, number, client_id").WillReturnError(errors.New("query"))
	if _, err := repo.List(ctx); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryMutate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	ctx := context.Background()

	now := time.Now()
	order := sampleOrder(now)
	services := pgxmockv3.NewRows([]string{"id", "name", "price"}).
		AddRow("clean", "Cleaning", decimal.NewFromInt(35)).
		AddRow("sole", "Sole repair", decimal.NewFromInt(60))

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(order.ID).WillReturnRows(orderRow(pgxmockv3.NewRows(orderCols), order))
	mock.ExpectQuery("FROM order_items WHERE order_id").WithArgs(order.ID).WillReturnRows(itemRows(order))
	mock.ExpectQuery("SELECT id, name, price FROM services").WillReturnRows(services)
	mock.ExpectExec("UPDATE orders SET status").WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM order_items").WithArgs(order.ID).WillReturnResult(pgxmockv3.NewResult("DELETE", 2))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(order.Items[0].ID, order.ID, 0, "Nike", "", "clean", "A1", "", pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_history").
		WithArgs(order.ID, model.OrderStatusReceived, model.OrderStatusDelivered, pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	updated, change, err := repo.Mutate(ctx, order.ID, func(o *model.Order, c model.Catalog) (*model.StatusChange, error) {
		if price, ok := c.Price("sole"); !ok || !price.Equal(decimal.NewFromInt(60)) {
			t.Fatalf("catalog not loaded in transaction: %v", c.Services())
		}
		o.Status = model.OrderStatusDelivered
		o.AmountPaid = decimal.NewFromInt(95)
		return &model.StatusChange{OrderID: o.ID, From: model.OrderStatusReceived, To: model.OrderStatusDelivered, AmountCollected: decimal.NewFromInt(95), ChangedAt: now}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.OrderStatusDelivered || change.To != model.OrderStatusDelivered {
		t.Fatalf("unexpected result %+v %+v", updated, change)
	}

	gate := &domainErrors.PendingPaymentError{Pending: decimal.NewFromInt(95)}
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(order.ID).WillReturnRows(orderRow(pgxmockv3.NewRows(orderCols), order))
	mock.ExpectQuery("FROM order_items WHERE order_id").WithArgs(order.ID).WillReturnRows(itemRows(order))
	mock.ExpectQuery("SELECT id, name, price FROM services").WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "price"}))
	mock.ExpectRollback()
	if _, _, err := repo.Mutate(ctx, order.ID, func(*model.Order, model.Catalog) (*model.StatusChange, error) {
		return nil, gate
	}); !errors.Is(err, domainErrors.ErrPaymentPending) {
		t.Fatalf("expected gate error to pass through, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(order.ID).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()
	if _, _, err := repo.Mutate(ctx, order.ID, func(*model.Order, model.Catalog) (*model.StatusChange, error) {
		t.Fatal("mutation must not run for a missing order")
		return nil, nil
	}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryDeleteHistoryAndPhoto(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	ctx := context.Background()
	id, item := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM orders").WithArgs(id).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mock.ExpectExec("DELETE FROM orders").WithArgs(id).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(ctx, id); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	now := time.Now()
	mock.ExpectQuery("FROM order_history").WithArgs(id).WillReturnRows(
		pgxmockv3.NewRows([]string{"order_id", "from_status", "to_status", "amount_collected", "changed_at"}).
			AddRow(id, model.OrderStatusReceived, model.OrderStatusReady, decimal.Zero, now).
			AddRow(id, model.OrderStatusReady, model.OrderStatusDelivered, decimal.NewFromInt(35), now.Add(time.Hour)))
	history, err := repo.History(ctx, id)
	if err != nil || len(history) != 2 || history[1].To != model.OrderStatusDelivered {
		t.Fatalf("unexpected history %+v err=%v", history, err)
	}

	mock.ExpectExec("UPDATE order_items SET photo_key").WithArgs(id, item, "orders/x.jpg").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.SetPhoto(ctx, id, item, "orders/x.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mock.ExpectExec("UPDATE order_items SET photo_key").WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.SetPhoto(ctx, id, item, "orders/x.jpg"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
