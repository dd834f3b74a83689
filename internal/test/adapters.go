package test

import (
	"context"
	"io"
	"sync"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// NotifierStub records notifications.
type NotifierStub struct {
	mu   sync.Mutex
	Sent []model.Notification
}

// Notify stores the notification.
func (s *NotifierStub) Notify(ctx context.Context, n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, n)
}

// Notifications returns a copy of recorded notifications.
func (s *NotifierStub) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.Sent...)
}

// PhotoStoreStub keeps uploaded photos in memory.
type PhotoStoreStub struct {
	UploadFn func(context.Context, string, string, io.Reader) error
	Disabled bool
	Objects  map[string][]byte
}

// Upload stores the body under key.
func (s *PhotoStoreStub) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if s.Disabled {
		return domainErrors.ErrPhotosDisabled
	}
	if s.UploadFn != nil {
		return s.UploadFn(ctx, key, contentType, body)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if s.Objects == nil {
		s.Objects = make(map[string][]byte)
	}
	s.Objects[key] = data
	return nil
}

// URL returns a fake link for stored objects.
func (s *PhotoStoreStub) URL(ctx context.Context, key string) (string, error) {
	if s.Disabled {
		return "", domainErrors.ErrPhotosDisabled
	}
	if _, ok := s.Objects[key]; !ok {
		return "", domainErrors.ErrNotFound
	}
	return "https://photos.test/" + key, nil
}
