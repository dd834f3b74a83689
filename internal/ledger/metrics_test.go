package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

func TestComputeMetrics(t *testing.T) {
	a := newOrder(35, "clean", "sole")
	b := newOrder(0, "sole")
	b.Items[0].Rack = "B1"
	b.Status = model.OrderStatusDelivered
	b.AmountPaid = decimal.NewFromInt(60)
	c := newOrder(10, "dye")
	c.Items[0].Rack = "C1"

	m := ComputeMetrics([]model.Order{a, b, c}, testCatalog, 50)

	assert.True(t, m.TotalRevenue.Equal(decimal.NewFromInt(200)))
	assert.True(t, m.ReceivedRevenue.Equal(decimal.NewFromInt(105)))
	assert.True(t, m.PendingRevenue.Equal(decimal.NewFromInt(95)))
	assert.True(t, m.TotalRevenue.Equal(m.ReceivedRevenue.Add(m.PendingRevenue)))
	assert.Equal(t, 3, m.TotalOrders)
	assert.Equal(t, 1, m.DeliveredOrders)
	assert.Equal(t, 2, m.OrdersByStatus[model.OrderStatusReceived])
	assert.Equal(t, 0, m.OrdersByStatus[model.OrderStatusCancelled])
	assert.Equal(t, 3, m.OccupiedRacks)
	assert.Equal(t, 47, m.FreeRacks)

	require.Len(t, m.ServiceStats, 3)
	assert.Equal(t, "sole", m.ServiceStats[0].ServiceID)
	assert.Equal(t, 2, m.ServiceStats[0].Count)
	assert.True(t, m.ServiceStats[0].Revenue.Equal(decimal.NewFromInt(120)))
	// clean and dye tie at one item and keep catalog order
	assert.Equal(t, "clean", m.ServiceStats[1].ServiceID)
	assert.Equal(t, "dye", m.ServiceStats[2].ServiceID)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, testCatalog, 20)
	assert.True(t, m.TotalRevenue.IsZero())
	assert.True(t, m.PendingRevenue.IsZero())
	assert.Equal(t, 20, m.FreeRacks)
	require.Len(t, m.ServiceStats, 3)
	for _, s := range m.ServiceStats {
		assert.Zero(t, s.Count)
	}
}
