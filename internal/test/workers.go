package test

import (
	"context"
	"sync"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// SyncerStub records ledger reloads.
type SyncerStub struct {
	LoadErr   error
	ReloadErr error

	mu      sync.Mutex
	loads   int
	reloads []string
}

// LoadAll counts full reloads.
func (s *SyncerStub) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return s.LoadErr
}

// Reload records the table name.
func (s *SyncerStub) Reload(ctx context.Context, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads = append(s.reloads, table)
	return s.ReloadErr
}

// Loads returns the number of LoadAll calls.
func (s *SyncerStub) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// Reloads returns the recorded table reloads.
func (s *SyncerStub) Reloads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.reloads...)
}

// SnapshotterStub counts snapshot runs.
type SnapshotterStub struct {
	Err error

	mu    sync.Mutex
	calls int
}

// Snapshot records the call.
func (s *SnapshotterStub) Snapshot(ctx context.Context) ([]model.MetricSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return []model.MetricSnapshot{{Name: model.MetricTotalOrders}}, nil
}

// Calls returns the number of Snapshot calls.
func (s *SnapshotterStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
