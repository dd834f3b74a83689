package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// RackHandler manages rack endpoints.
type RackHandler struct {
	facade RackFacade
}

// NewRackHandler constructs RackHandler.
func NewRackHandler(facade RackFacade) *RackHandler {
	return &RackHandler{facade: facade}
}

// List handles GET /api/racks.
func (h *RackHandler) List(c *gin.Context) {
	views := h.facade.Racks()
	resp := make([]dto.RackResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toRackResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

// Free handles GET /api/racks/free.
func (h *RackHandler) Free(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.FreeRacks())
}

// Get handles GET /api/racks/:rack.
func (h *RackHandler) Get(c *gin.Context) {
	view, err := h.facade.Rack(c.Param("rack"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRackResponse(*view))
}

// Update handles PUT /api/racks/:rack.
func (h *RackHandler) Update(c *gin.Context) {
	var req dto.RackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	patch := usecase.RackPatch{
		Location:    req.Location,
		Description: req.Description,
		Capacity:    req.Capacity,
		Status:      model.RackStatus(strings.ToLower(strings.TrimSpace(req.Status))),
	}
	view, err := h.facade.UpdateRack(c.Request.Context(), c.Param("rack"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRackResponse(*view))
}
