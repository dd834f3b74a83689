package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

const maxPhotoSize = 10 << 20

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders with optional status and client_id filters.
func (h *OrderHandler) List(c *gin.Context) {
	var filter usecase.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseOrderStatus(raw)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		filter.Status = status
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid client_id")
			return
		}
		filter.ClientID = id
	}

	orders := h.facade.Orders(filter)
	catalog := h.catalog()
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o, catalog))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, h.catalog()))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	draft := usecase.OrderDraft{
		ClientID:      req.ClientID,
		Items:         fromItemRequests(req.Items),
		PaymentStatus: model.PaymentStatus(strings.ToLower(strings.TrimSpace(req.PaymentStatus))),
		AmountPaid:    req.AmountPaid,
		Notes:         req.Notes,
		DeliveryDate:  req.DeliveryDate.Ptr(),
	}
	order, err := h.facade.CreateOrder(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order, h.catalog()))
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	patch := usecase.OrderPatch{
		Notes:             req.Notes,
		DeliveryDate:      req.DeliveryDate.Ptr(),
		ClearDeliveryDate: req.ClearDeliveryDate,
		AmountPaid:        req.AmountPaid,
	}
	if req.PaymentStatus != nil {
		status := model.PaymentStatus(strings.ToLower(strings.TrimSpace(*req.PaymentStatus)))
		patch.PaymentStatus = &status
	}
	if req.Items != nil {
		patch.Items = fromItemRequests(req.Items)
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, h.catalog()))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStatus handles POST /api/orders/:id/status. Delivery with an
// outstanding balance answers 402 until the request is acknowledged.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, change, err := h.facade.ChangeStatus(c.Request.Context(), id, status, req.Acknowledged)
	if err != nil {
		if _, pending := usecase.IsPaymentPending(err); pending {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, h.pendingBody(err))
			return
		}
		respondError(c, err)
		return
	}

	resp := dto.StatusResponse{Order: toOrderResponse(*order, h.catalog())}
	if change != nil {
		cr := toStatusChangeResponse(*change)
		resp.Change = &cr
	}
	c.JSON(http.StatusOK, resp)
}

// BulkChangeStatus handles POST /api/orders/status. Each order succeeds or
// fails on its own; the response lists every outcome.
func (h *OrderHandler) BulkChangeStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if len(req.OrderIDs) == 0 {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "order_ids is required"})
		return
	}
	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}

	results := h.facade.BulkChangeStatus(c.Request.Context(), req.OrderIDs, status, req.Acknowledged)
	catalog := h.catalog()
	resp := make([]dto.BulkStatusResult, 0, len(results))
	for _, r := range results {
		item := dto.BulkStatusResult{OrderID: r.OrderID.String()}
		switch {
		case r.Err != nil:
			body := errorBody(r.Err)
			if _, pending := usecase.IsPaymentPending(r.Err); pending {
				body = h.pendingBody(r.Err)
			}
			item.Error = &body
		case r.Order != nil:
			order := toOrderResponse(*r.Order, catalog)
			item.Order = &order
		}
		resp = append(resp, item)
	}
	c.JSON(http.StatusOK, resp)
}

// History handles GET /api/orders/:id/history.
func (h *OrderHandler) History(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	changes, err := h.facade.OrderHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.StatusChangeResponse, 0, len(changes))
	for _, change := range changes {
		resp = append(resp, toStatusChangeResponse(change))
	}
	c.JSON(http.StatusOK, resp)
}

// UploadPhoto handles POST /api/orders/:id/items/:item/photo. The image is
// either the raw request body or a multipart "photo" field.
func (h *OrderHandler) UploadPhoto(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize)
	var (
		body        io.Reader = c.Request.Body
		contentType           = c.ContentType()
	)
	if contentType == "multipart/form-data" {
		header, err := c.FormFile("photo")
		if err != nil {
			badRequest(c, "photo field is required")
			return
		}
		file, err := header.Open()
		if err != nil {
			badRequest(c, "unreadable photo")
			return
		}
		defer file.Close()
		body = file
		contentType = header.Header.Get("Content-Type")
	}

	key, err := h.facade.AttachPhoto(c.Request.Context(), orderID, itemID, contentType, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PhotoResponse{Key: key})
}

// PhotoURL handles GET /api/orders/:id/items/:item/photo.
func (h *OrderHandler) PhotoURL(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item")
	if !ok {
		return
	}
	url, err := h.facade.PhotoURL(c.Request.Context(), orderID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PhotoResponse{URL: url})
}

func (h *OrderHandler) pendingBody(err error) dto.ErrorResponse {
	amount, _ := usecase.IsPaymentPending(err)
	formatted := h.facade.FormatAmount(amount)
	return dto.ErrorResponse{
		Error:         "payment pending",
		PendingAmount: amount.StringFixed(2),
		Message:       fmt.Sprintf("%s is still outstanding; confirm it was collected to deliver the order", formatted),
	}
}

func (h *OrderHandler) catalog() model.Catalog {
	return model.NewCatalog(h.facade.Services()...)
}

func fromItemRequests(items []dto.LineItemRequest) []model.LineItem {
	out := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.LineItem{
			ID:        item.ID,
			Brand:     item.Brand,
			Details:   item.Details,
			ServiceID: item.ServiceID,
			Rack:      item.Rack,
		})
	}
	return out
}
