package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatResponse is the popularity of one service.
type ServiceStatResponse struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Count     int             `json:"count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// MetricsResponse describes GET /api/stats.
type MetricsResponse struct {
	TotalRevenue    decimal.Decimal       `json:"total_revenue"`
	ReceivedRevenue decimal.Decimal       `json:"received_revenue"`
	PendingRevenue  decimal.Decimal       `json:"pending_revenue"`
	TotalOrders     int                   `json:"total_orders"`
	DeliveredOrders int                   `json:"delivered_orders"`
	OrdersByStatus  map[string]int        `json:"orders_by_status"`
	ServiceStats    []ServiceStatResponse `json:"service_stats"`
	TotalRacks      int                   `json:"total_racks"`
	OccupiedRacks   int                   `json:"occupied_racks"`
	FreeRacks       int                   `json:"free_racks"`
}

// MetricPointResponse is one day of a metric series.
type MetricPointResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Date  time.Time       `json:"date"`
}
