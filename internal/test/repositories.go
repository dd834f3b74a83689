package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
)

// ClientRepositoryStub stores clients in-memory for tests.
type ClientRepositoryStub struct {
	Clients map[uuid.UUID]model.Client
	Err     error
	ListErr error
}

// NewClientRepositoryStub constructs stub repository with initialized map.
func NewClientRepositoryStub(clients ...model.Client) *ClientRepositoryStub {
	s := &ClientRepositoryStub{Clients: make(map[uuid.UUID]model.Client)}
	for _, c := range clients {
		s.Clients[c.ID] = c
	}
	return s
}

// Create stores client unless the stub has an explicit error.
func (s *ClientRepositoryStub) Create(ctx context.Context, c model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Clients[c.ID] = c
	return &c, nil
}

// Update replaces a stored client.
func (s *ClientRepositoryStub) Update(ctx context.Context, c model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Clients[c.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Clients[c.ID] = c
	return &c, nil
}

// Delete drops a stored client.
func (s *ClientRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Clients[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Clients, id)
	return nil
}

// List returns stored clients.
func (s *ClientRepositoryStub) List(ctx context.Context) ([]model.Client, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]model.Client, 0, len(s.Clients))
	for _, c := range s.Clients {
		out = append(out, c)
	}
	return out, nil
}

// ServiceRepositoryStub keeps the catalog in insertion order.
type ServiceRepositoryStub struct {
	Services []model.ServiceType
	Err      error
	Deleted  []string
}

// Create appends a service.
func (s *ServiceRepositoryStub) Create(ctx context.Context, svc model.ServiceType) (*model.ServiceType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Services = append(s.Services, svc)
	return &svc, nil
}

// Update replaces a service in place.
func (s *ServiceRepositoryStub) Update(ctx context.Context, svc model.ServiceType) (*model.ServiceType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Services {
		if s.Services[i].ID == svc.ID {
			s.Services[i] = svc
			return &svc, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records the call and removes the service.
func (s *ServiceRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Deleted = append(s.Deleted, id)
	for i := range s.Services {
		if s.Services[i].ID == id {
			s.Services = append(s.Services[:i], s.Services[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// List returns the configured services.
func (s *ServiceRepositoryStub) List(ctx context.Context) ([]model.ServiceType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.ServiceType(nil), s.Services...), nil
}

// OrderRepositoryStub stores orders in-memory and lets tests override single calls.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, model.Order) (*model.Order, error)
	MutateFn func(context.Context, uuid.UUID, repository.OrderMutation) (*model.Order, *model.StatusChange, error)
	DeleteFn func(context.Context, uuid.UUID) error
	ListErr  error

	// Catalog is handed to mutations as the transaction's view of prices.
	Catalog model.Catalog

	mu      sync.Mutex
	Orders  map[uuid.UUID]model.Order
	Changes []model.StatusChange
	Photos  map[uuid.UUID]string
}

// NewOrderRepositoryStub constructs stub repository seeded with orders.
func NewOrderRepositoryStub(catalog model.Catalog, orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{
		Catalog: catalog,
		Orders:  make(map[uuid.UUID]model.Order),
		Photos:  make(map[uuid.UUID]string),
	}
	for _, o := range orders {
		s.Orders[o.ID] = o.Clone()
	}
	return s
}

// Create stores the order or delegates to CreateFn.
func (s *OrderRepositoryStub) Create(ctx context.Context, o model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, o)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.Orders[o.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Orders[o.ID] = o.Clone()
	return &o, nil
}

// Get returns a stored order.
func (s *OrderRepositoryStub) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c := o.Clone()
	return &c, nil
}

// List returns stored orders newest first.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		out = append(out, o.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Delete drops a stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// Mutate runs fn on a copy and keeps it only when fn succeeds, like a rolled back transaction.
func (s *OrderRepositoryStub) Mutate(ctx context.Context, id uuid.UUID, fn repository.OrderMutation) (*model.Order, *model.StatusChange, error) {
	if s.MutateFn != nil {
		return s.MutateFn(ctx, id, fn)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.Orders[id]
	if !ok {
		return nil, nil, domainErrors.ErrNotFound
	}
	o := stored.Clone()
	change, err := fn(&o, s.Catalog)
	if err != nil {
		return nil, nil, err
	}
	s.Orders[id] = o.Clone()
	if change != nil {
		s.Changes = append(s.Changes, *change)
	}
	return &o, change, nil
}

// History returns recorded changes of one order.
func (s *OrderRepositoryStub) History(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.StatusChange
	for _, c := range s.Changes {
		if c.OrderID == id {
			out = append(out, c)
		}
	}
	return out, nil
}

// SetPhoto records the key on the stored item.
func (s *OrderRepositoryStub) SetPhoto(ctx context.Context, orderID, itemID uuid.UUID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items[i].PhotoKey = key
			s.Orders[orderID] = o
			s.Photos[itemID] = key
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// RackRepositoryStub keeps rack metadata in-memory.
type RackRepositoryStub struct {
	Racks map[string]model.Rack
	Err   error
}

// List returns stored racks.
func (s *RackRepositoryStub) List(ctx context.Context) ([]model.Rack, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Rack, 0, len(s.Racks))
	for _, r := range s.Racks {
		out = append(out, r)
	}
	return out, nil
}

// Upsert stores rack metadata.
func (s *RackRepositoryStub) Upsert(ctx context.Context, r model.Rack) (*model.Rack, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Racks == nil {
		s.Racks = make(map[string]model.Rack)
	}
	s.Racks[r.Number] = r
	return &r, nil
}

// StatsRepositoryStub records snapshots.
type StatsRepositoryStub struct {
	mu        sync.Mutex
	Snapshots []model.MetricSnapshot
	Calls     int
	Err       error
}

// Upsert records one snapshot batch.
func (s *StatsRepositoryStub) Upsert(ctx context.Context, snapshots []model.MetricSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	s.Snapshots = append(s.Snapshots, snapshots...)
	return nil
}

// History filters recorded snapshots.
func (s *StatsRepositoryStub) History(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.MetricSnapshot
	for _, snap := range s.Snapshots {
		if snap.Name == name && !snap.Date.Before(from) && !snap.Date.After(to) {
			out = append(out, snap)
		}
	}
	return out, nil
}

// CallCount returns the number of Upsert calls.
func (s *StatsRepositoryStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}
