package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStat is the popularity of one service type.
type ServiceStat struct {
	ServiceID string
	Name      string
	Count     int
	Revenue   decimal.Decimal
}

// Metrics are dashboard aggregates derived from the order set.
type Metrics struct {
	TotalRevenue    decimal.Decimal
	ReceivedRevenue decimal.Decimal
	PendingRevenue  decimal.Decimal
	ServiceStats    []ServiceStat
	TotalOrders     int
	DeliveredOrders int
	OrdersByStatus  map[OrderStatus]int
	TotalRacks      int
	OccupiedRacks   int
	FreeRacks       int
}

// Names of metrics persisted in daily snapshots.
const (
	MetricTotalRevenue    = "total_revenue"
	MetricReceivedRevenue = "received_revenue"
	MetricPendingRevenue  = "pending_revenue"
	MetricTotalOrders     = "total_orders"
	MetricDeliveredOrders = "delivered_orders"
	MetricOccupiedRacks   = "occupied_racks"
	MetricFreeRacks       = "free_racks"
)

// MetricSnapshot is one named value for a calendar day.
type MetricSnapshot struct {
	Name  string
	Value decimal.Decimal
	Date  time.Time
}

// Snapshot flattens m into named values stamped with date.
func (m Metrics) Snapshot(date time.Time) []MetricSnapshot {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	snapshots := []MetricSnapshot{
		{Name: MetricTotalRevenue, Value: m.TotalRevenue},
		{Name: MetricReceivedRevenue, Value: m.ReceivedRevenue},
		{Name: MetricPendingRevenue, Value: m.PendingRevenue},
		{Name: MetricTotalOrders, Value: decimal.NewFromInt(int64(m.TotalOrders))},
		{Name: MetricDeliveredOrders, Value: decimal.NewFromInt(int64(m.DeliveredOrders))},
		{Name: MetricOccupiedRacks, Value: decimal.NewFromInt(int64(m.OccupiedRacks))},
		{Name: MetricFreeRacks, Value: decimal.NewFromInt(int64(m.FreeRacks))},
	}
	for _, status := range orderStatuses {
		snapshots = append(snapshots, MetricSnapshot{
			Name:  "orders_" + string(status),
			Value: decimal.NewFromInt(int64(m.OrdersByStatus[status])),
		})
	}
	for i := range snapshots {
		snapshots[i].Date = day
	}
	return snapshots
}
