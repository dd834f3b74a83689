package repository

import (
	"context"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// RackRepository stores operator-maintained rack metadata.
type RackRepository interface {
	List(ctx context.Context) ([]model.Rack, error)
	Upsert(ctx context.Context, rack model.Rack) (*model.Rack, error)
}
