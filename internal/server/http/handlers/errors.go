package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
)

var conflicts = []error{
	domainErrors.ErrAlreadyExists,
	domainErrors.ErrRackOccupied,
	domainErrors.ErrRackUnavailable,
	domainErrors.ErrRackConflict,
	domainErrors.ErrClientHasOrders,
	domainErrors.ErrServiceInUse,
	domainErrors.ErrOrderDelivered,
	domainErrors.ErrOrderCancelled,
}

// StatusFor maps a use case error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrPaymentPending):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrPhotosDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case domainErrors.IsValidation(err):
		return http.StatusUnprocessableEntity
	}
	for _, target := range conflicts {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

func errorBody(err error) dto.ErrorResponse {
	if StatusFor(err) == http.StatusInternalServerError {
		return dto.ErrorResponse{Error: "internal error"}
	}
	return dto.ErrorResponse{Error: err.Error()}
}

func respondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, errorBody(err))
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
