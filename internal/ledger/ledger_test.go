package ledger

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

func seededLedger(t *testing.T) (*Ledger, model.Client) {
	t.Helper()
	l := New(50)
	client := model.Client{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", CreatedAt: time.Unix(100, 0)}
	l.ReplaceClients([]model.Client{client})
	l.ReplaceCatalog(testCatalog)
	return l, client
}

func draft(client model.Client, racks ...string) model.Order {
	o := model.Order{ID: uuid.New(), Number: "ORD-" + uuid.NewString()[:8], ClientID: client.ID, Status: model.OrderStatusReceived, AmountPaid: decimal.Zero}
	for _, r := range racks {
		o.Items = append(o.Items, model.LineItem{ID: uuid.New(), Brand: "Adidas", ServiceID: "clean", Rack: r})
	}
	return o
}

func decimalEqual(a, b decimal.Decimal) bool { return a.Equal(b) }

func assertMetricsMatchFold(t *testing.T, l *Ledger) {
	t.Helper()
	want := ComputeMetrics(l.Orders(), l.Catalog(), l.TotalRacks())
	if diff := cmp.Diff(want, l.Metrics(), cmp.Comparer(decimalEqual)); diff != "" {
		t.Fatalf("incremental metrics drifted from fold (-want +got):\n%s", diff)
	}
}

func TestLedgerCheckOrder(t *testing.T) {
	l, client := seededLedger(t)
	held := draft(client, "A1")
	require.NoError(t, l.PutOrder(held))
	l.PutRack(model.Rack{Number: "A9", Status: model.RackStatusMaintenance})

	cases := []struct {
		name   string
		mutate func(*model.Order)
		want   error
	}{
		{"unknown client", func(o *model.Order) { o.ClientID = uuid.New() }, domainErrors.ErrUnknownClient},
		{"no items", func(o *model.Order) { o.Items = nil }, domainErrors.ErrValidation},
		{"missing brand", func(o *model.Order) { o.Items[0].Brand = " " }, domainErrors.ErrValidation},
		{"missing service", func(o *model.Order) { o.Items[0].ServiceID = "" }, domainErrors.ErrValidation},
		{"missing rack", func(o *model.Order) { o.Items[0].Rack = "" }, domainErrors.ErrValidation},
		{"unknown service", func(o *model.Order) { o.Items[0].ServiceID = "polish" }, domainErrors.ErrUnknownService},
		{"rack outside shop", func(o *model.Order) { o.Items[0].Rack = "Z1" }, domainErrors.ErrUnknownRack},
		{"rack held elsewhere", func(o *model.Order) { o.Items[0].Rack = "A1" }, domainErrors.ErrRackOccupied},
		{"rack twice in order", func(o *model.Order) {
			o.Items = append(o.Items, model.LineItem{Brand: "Puma", ServiceID: "clean", Rack: o.Items[0].Rack})
		}, domainErrors.ErrRackOccupied},
		{"rack under maintenance", func(o *model.Order) { o.Items[0].Rack = "A9" }, domainErrors.ErrRackUnavailable},
		{"negative payment", func(o *model.Order) { o.AmountPaid = decimal.NewFromInt(-1) }, domainErrors.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := draft(client, "B2")
			tc.mutate(&o)
			assert.ErrorIs(t, l.CheckOrder(o), tc.want)
		})
	}

	assert.NoError(t, l.CheckOrder(draft(client, "B2", "B3")))
	assert.NoError(t, l.CheckOrder(held), "an order may keep its own racks")
}

func TestLedgerCheckOrderKeepsRackGoneToMaintenance(t *testing.T) {
	l, client := seededLedger(t)
	o := draft(client, "C1")
	require.NoError(t, l.PutOrder(o))
	l.PutRack(model.Rack{Number: "C1", Status: model.RackStatusOutOfService})

	o.Notes = "left heel"
	assert.NoError(t, l.CheckOrder(o))

	other := draft(client, "C2")
	other.Items[0].Rack = "C1"
	assert.ErrorIs(t, l.CheckOrder(other), domainErrors.ErrRackOccupied)
}

func TestLedgerIndexesFollowMutations(t *testing.T) {
	l, client := seededLedger(t)
	now := time.Now()

	a := draft(client, "A1", "A2")
	a.CreatedAt = now
	b := draft(client, "B1")
	b.CreatedAt = now.Add(time.Minute)
	b.AmountPaid = decimal.NewFromInt(10)
	require.NoError(t, l.PutOrder(a))
	require.NoError(t, l.PutOrder(b))
	assertMetricsMatchFold(t, l)

	info, ok := l.RackInfo("A2")
	require.True(t, ok)
	assert.Equal(t, a.ID, info.OrderID)
	assert.Len(t, l.FreeRacks(), 47)
	assert.Equal(t, b.ID, l.Orders()[0].ID, "orders are listed newest first")

	// moving an item releases the old rack
	a.Items[1].Rack = "A3"
	require.NoError(t, l.PutOrder(a))
	_, ok = l.RackInfo("A2")
	assert.False(t, ok)
	assertMetricsMatchFold(t, l)

	_, err := ChangeStatus(&b, model.OrderStatusDelivered, true, now, l.Catalog())
	require.NoError(t, err)
	require.NoError(t, l.PutOrder(b))
	_, ok = l.RackInfo("B1")
	assert.False(t, ok)
	assertMetricsMatchFold(t, l)

	l.PutService(model.ServiceType{ID: "clean", Name: "Cleaning", Price: decimal.NewFromInt(50)})
	assertMetricsMatchFold(t, l)
	assert.True(t, l.Summary(a).Total.Equal(decimal.NewFromInt(100)))

	l.RemoveOrder(a.ID)
	assert.Len(t, l.FreeRacks(), 50)
	assertMetricsMatchFold(t, l)

	m := l.Metrics()
	assert.True(t, m.TotalRevenue.Equal(m.ReceivedRevenue.Add(m.PendingRevenue)))
}

func TestLedgerPutOrderReportsStaleConflict(t *testing.T) {
	l, client := seededLedger(t)
	first := draft(client, "D4")
	require.NoError(t, l.PutOrder(first))

	second := draft(client, "D4")
	require.ErrorIs(t, l.PutOrder(second), domainErrors.ErrRackConflict)
	info, _ := l.RackInfo("D4")
	assert.Equal(t, second.ID, info.OrderID)

	l.RemoveOrder(first.ID)
	info, ok := l.RackInfo("D4")
	require.True(t, ok, "removing the displaced order must not drop the new claim")
	assert.Equal(t, second.ID, info.OrderID)
}

func TestLedgerReplaceOrdersRejectsCorruptSet(t *testing.T) {
	l, client := seededLedger(t)
	good := draft(client, "A1")
	require.NoError(t, l.ReplaceOrders([]model.Order{good}))

	err := l.ReplaceOrders([]model.Order{draft(client, "B1"), draft(client, "B1")})
	require.ErrorIs(t, err, domainErrors.ErrRackConflict)
	_, ok := l.Order(good.ID)
	assert.True(t, ok, "previous state is kept")
}

func TestLedgerRackViews(t *testing.T) {
	l, client := seededLedger(t)
	o := draft(client, "A2")
	require.NoError(t, l.PutOrder(o))
	l.ReplaceRacks([]model.Rack{
		{Number: "A2", Location: "front", Status: model.RackStatusMaintenance},
		{Number: "A3", Location: "back", Capacity: 2, Status: model.RackStatusMaintenance},
	})

	views := l.RackViews()
	require.Len(t, views, 50)
	assert.Equal(t, model.RackStatusAvailable, views[0].Status)
	assert.Equal(t, model.RackStatusOccupied, views[1].Status)
	require.NotNil(t, views[1].Assignment)
	assert.Equal(t, o.Number, views[1].Assignment.OrderNumber)
	assert.Equal(t, "front", views[1].Location)
	assert.Equal(t, model.RackStatusMaintenance, views[2].Status)

	_, err := l.RackView("Q1")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestLedgerClientAndServiceReferences(t *testing.T) {
	l, client := seededLedger(t)
	assert.False(t, l.HasOrders(client.ID))
	assert.False(t, l.ServiceInUse("clean"))

	o := draft(client, "A1")
	require.NoError(t, l.PutOrder(o))
	assert.True(t, l.HasOrders(client.ID))
	assert.True(t, l.ServiceInUse("clean"))
	assert.False(t, l.ServiceInUse("sole"))

	summaries := l.Summaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, "Ann", summaries[0].ClientName)
	assert.True(t, summaries[0].Pending.Equal(decimal.NewFromInt(35)))

	l.RemoveClient(client.ID)
	_, ok := l.Client(client.ID)
	assert.False(t, ok)
	l.RemoveService("sole")
	assert.Equal(t, 2, l.Catalog().Len())
}
