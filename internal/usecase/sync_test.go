package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
	testhelpers "github.com/xXDatiXx/pimp-cleaner-25/internal/test"
)

type syncFixture struct {
	uc       *SyncUseCase
	ledger   *ledger.Ledger
	clients  *testhelpers.ClientRepositoryStub
	services *testhelpers.ServiceRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	racks    *testhelpers.RackRepositoryStub
}

func newSyncFixture() *syncFixture {
	client := model.Client{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	order := model.Order{
		ID: uuid.New(), Number: "ORD-1", ClientID: client.ID, Status: model.OrderStatusInWork, CreatedAt: time.Now(),
		Items: []model.LineItem{{ID: uuid.New(), Brand: "Nike", ServiceID: "clean", Rack: "A1"}},
	}
	f := &syncFixture{
		ledger:   ledger.New(50),
		clients:  testhelpers.NewClientRepositoryStub(client),
		services: &testhelpers.ServiceRepositoryStub{Services: shopCatalog.Services()},
		orders:   testhelpers.NewOrderRepositoryStub(shopCatalog, order),
		racks:    &testhelpers.RackRepositoryStub{Racks: map[string]model.Rack{"B1": {Number: "B1", Capacity: 1, Status: model.RackStatusOutOfService}}},
	}
	f.uc = NewSyncUseCase(SyncParams{
		Clients:  f.clients,
		Services: f.services,
		Orders:   f.orders,
		Racks:    f.racks,
		Ledger:   f.ledger,
		Logger:   discardLogger(),
	})
	return f
}

func TestSyncUseCaseLoadAll(t *testing.T) {
	f := newSyncFixture()
	require.NoError(t, f.uc.LoadAll(context.Background()))

	assert.Len(t, f.ledger.Clients(), 1)
	assert.Equal(t, 2, f.ledger.Catalog().Len())
	summaries := f.ledger.Summaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, "Ana", summaries[0].ClientName)
	assert.NotContains(t, f.ledger.FreeRacks(), "A1")

	view, err := f.ledger.RackView("B1")
	require.NoError(t, err)
	assert.Equal(t, model.RackStatusOutOfService, view.Status)
}

func TestSyncUseCaseReloadPicksUpExternalChanges(t *testing.T) {
	f := newSyncFixture()
	ctx := context.Background()
	require.NoError(t, f.uc.LoadAll(ctx))

	for id := range f.orders.Orders {
		o := f.orders.Orders[id]
		o.Status = model.OrderStatusDelivered
		f.orders.Orders[id] = o
	}
	require.NoError(t, f.uc.Reload(ctx, TableOrderItems))
	assert.Contains(t, f.ledger.FreeRacks(), "A1")

	f.services.Services = f.services.Services[:1]
	require.NoError(t, f.uc.Reload(ctx, TableServices))
	assert.Equal(t, 1, f.ledger.Catalog().Len())

	require.Error(t, f.uc.Reload(ctx, "sessions"))
}

func TestSyncUseCaseKeepsStateOnFailure(t *testing.T) {
	f := newSyncFixture()
	ctx := context.Background()
	require.NoError(t, f.uc.LoadAll(ctx))

	f.orders.ListErr = errors.New("connection refused")
	require.Error(t, f.uc.Reload(ctx, TableOrders))
	assert.Len(t, f.ledger.Orders(), 1)
	f.orders.ListErr = nil

	clientID := f.ledger.Orders()[0].ClientID
	corrupt := model.Order{
		ID: uuid.New(), Number: "ORD-2", ClientID: clientID, Status: model.OrderStatusReceived,
		Items: []model.LineItem{{ID: uuid.New(), Brand: "Puma", ServiceID: "clean", Rack: "A1"}},
	}
	f.orders.Orders[corrupt.ID] = corrupt
	err := f.uc.Reload(ctx, TableOrders)
	require.ErrorIs(t, err, domainErrors.ErrRackConflict)
	assert.Len(t, f.ledger.Orders(), 1)

	f.clients.ListErr = errors.New("timeout")
	require.Error(t, f.uc.LoadAll(ctx))
}
