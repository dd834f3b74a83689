package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
)

// ClientHandler manages client endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients := h.facade.Clients()
	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, toClientResponse(client))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	client, err := h.facade.Client(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(*client))
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	client, err := h.facade.CreateClient(c.Request.Context(), fromClientRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toClientResponse(*client))
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	client, err := h.facade.UpdateClient(c.Request.Context(), id, fromClientRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(*client))
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func fromClientRequest(req dto.ClientRequest) model.Client {
	return model.Client{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
}
