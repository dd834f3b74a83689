package handlers

import (
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
)

func toClientResponse(c model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toServiceResponse(s model.ServiceType) dto.ServiceResponse {
	return dto.ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price}
}

func toOrderResponse(o model.OrderSummary, catalog model.Catalog) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		svc, _ := catalog.Lookup(item.ServiceID)
		items = append(items, dto.LineItemResponse{
			ID:        item.ID.String(),
			Brand:     item.Brand,
			Details:   item.Details,
			ServiceID: item.ServiceID,
			Service:   svc.Name,
			Price:     svc.Price,
			Rack:      item.Rack,
			HasPhoto:  item.PhotoKey != "",
		})
	}
	return dto.OrderResponse{
		ID:            o.ID.String(),
		Number:        o.Number,
		ClientID:      o.ClientID.String(),
		ClientName:    o.ClientName,
		Status:        string(o.Status),
		Items:         items,
		PaymentStatus: string(o.PaymentStatus),
		AmountPaid:    o.AmountPaid,
		Total:         o.Total,
		Pending:       o.Pending,
		Notes:         o.Notes,
		ReceivedAt:    o.ReceivedAt,
		DeliveryDate:  dto.NewDate(o.DeliveryDate),
		DeliveredAt:   o.DeliveredAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toStatusChangeResponse(c model.StatusChange) dto.StatusChangeResponse {
	return dto.StatusChangeResponse{
		OrderID:         c.OrderID.String(),
		From:            string(c.From),
		To:              string(c.To),
		AmountCollected: c.AmountCollected,
		ChangedAt:       c.ChangedAt,
	}
}

func toRackResponse(v model.RackView) dto.RackResponse {
	resp := dto.RackResponse{
		Number:      v.Number,
		Location:    v.Location,
		Description: v.Description,
		Capacity:    v.Capacity,
		Status:      string(v.Status),
	}
	if !v.UpdatedAt.IsZero() {
		at := v.UpdatedAt
		resp.UpdatedAt = &at
	}
	if a := v.Assignment; a != nil {
		resp.Assignment = &dto.RackAssignmentResponse{
			OrderID:     a.OrderID.String(),
			OrderNumber: a.OrderNumber,
			ItemID:      a.ItemID.String(),
			Brand:       a.Brand,
		}
	}
	return resp
}

func toMetricsResponse(m model.Metrics) dto.MetricsResponse {
	byStatus := make(map[string]int, len(m.OrdersByStatus))
	for _, status := range model.OrderStatuses() {
		byStatus[string(status)] = m.OrdersByStatus[status]
	}
	stats := make([]dto.ServiceStatResponse, 0, len(m.ServiceStats))
	for _, s := range m.ServiceStats {
		stats = append(stats, dto.ServiceStatResponse{ServiceID: s.ServiceID, Name: s.Name, Count: s.Count, Revenue: s.Revenue})
	}
	return dto.MetricsResponse{
		TotalRevenue:    m.TotalRevenue,
		ReceivedRevenue: m.ReceivedRevenue,
		PendingRevenue:  m.PendingRevenue,
		TotalOrders:     m.TotalOrders,
		DeliveredOrders: m.DeliveredOrders,
		OrdersByStatus:  byStatus,
		ServiceStats:    stats,
		TotalRacks:      m.TotalRacks,
		OccupiedRacks:   m.OccupiedRacks,
		FreeRacks:       m.FreeRacks,
	}
}
