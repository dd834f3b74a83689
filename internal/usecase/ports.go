package usecase

import (
	"context"
	"io"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// Notifier delivers notifications without blocking the caller.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification)
}

// PhotoStore keeps line-item photos in object storage.
type PhotoStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	URL(ctx context.Context, key string) (string, error)
}
