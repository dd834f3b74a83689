package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// ComputeMetrics folds the whole order set into dashboard aggregates.
func ComputeMetrics(orders []model.Order, catalog model.Catalog, totalRacks int) model.Metrics {
	counts := make(map[string]int)
	byStatus := make(map[model.OrderStatus]int)
	received := decimal.Zero
	for _, order := range orders {
		byStatus[order.Status]++
		received = received.Add(order.AmountPaid)
		for _, item := range order.Items {
			counts[item.ServiceID]++
		}
	}
	occupied, _ := OccupiedRacks(orders)
	return buildMetrics(catalog, counts, byStatus, received, len(orders), totalRacks, inUniverse(occupied, totalRacks))
}

func buildMetrics(catalog model.Catalog, counts map[string]int, byStatus map[model.OrderStatus]int, received decimal.Decimal, orders, totalRacks, occupied int) model.Metrics {
	stats := make([]model.ServiceStat, 0, catalog.Len())
	total := decimal.Zero
	for _, s := range catalog.Services() {
		revenue := s.Price.Mul(decimal.NewFromInt(int64(counts[s.ID])))
		total = total.Add(revenue)
		stats = append(stats, model.ServiceStat{ServiceID: s.ID, Name: s.Name, Count: counts[s.ID], Revenue: revenue})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })

	statuses := make(map[model.OrderStatus]int, len(byStatus))
	for _, s := range model.OrderStatuses() {
		statuses[s] = byStatus[s]
	}

	return model.Metrics{
		TotalRevenue:    total,
		ReceivedRevenue: received,
		PendingRevenue:  total.Sub(received),
		ServiceStats:    stats,
		TotalOrders:     orders,
		DeliveredOrders: byStatus[model.OrderStatusDelivered],
		OrdersByStatus:  statuses,
		TotalRacks:      max(totalRacks, 0),
		OccupiedRacks:   occupied,
		FreeRacks:       max(totalRacks, 0) - occupied,
	}
}

func inUniverse(occupied map[string]model.RackAssignment, total int) int {
	n := 0
	for rack := range occupied {
		if ValidRack(rack, total) {
			n++
		}
	}
	return n
}
