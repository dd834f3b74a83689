package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
)

// ServiceHandler manages the service catalog.
type ServiceHandler struct {
	facade CatalogFacade
}

// NewServiceHandler constructs ServiceHandler.
func NewServiceHandler(facade CatalogFacade) *ServiceHandler {
	return &ServiceHandler{facade: facade}
}

// List handles GET /api/services.
func (h *ServiceHandler) List(c *gin.Context) {
	services := h.facade.Services()
	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/services.
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	svc, err := h.facade.CreateService(c.Request.Context(), model.ServiceType{ID: req.ID, Name: req.Name, Price: req.Price})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toServiceResponse(*svc))
}

// Update handles PUT /api/services/:id.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	id := c.Param("id")
	svc, err := h.facade.UpdateService(c.Request.Context(), id, model.ServiceType{ID: id, Name: req.Name, Price: req.Price})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(*svc))
}

// Delete handles DELETE /api/services/:id.
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
