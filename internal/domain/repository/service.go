package repository

import (
	"context"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// ServiceRepository persists the service catalog in display order.
type ServiceRepository interface {
	Create(ctx context.Context, service model.ServiceType) (*model.ServiceType, error)
	Update(ctx context.Context, service model.ServiceType) (*model.ServiceType, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.ServiceType, error)
}
