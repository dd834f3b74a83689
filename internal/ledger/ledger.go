package ledger

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// Ledger is the in-memory read model of the shop. It owns the clients,
// orders, service catalog and rack metadata last confirmed by the store and
// keeps the rack index and metric accumulators current on every order
// mutation, so reads never rescan the order set.
type Ledger struct {
	mu         sync.RWMutex
	totalRacks int

	clients map[uuid.UUID]model.Client
	orders  map[uuid.UUID]model.Order
	catalog model.Catalog
	racks   map[string]model.Rack

	rackIndex     map[string]model.RackAssignment
	serviceCounts map[string]int
	statusCounts  map[model.OrderStatus]int
	received      decimal.Decimal
}

func New(totalRacks int) *Ledger {
	return &Ledger{
		totalRacks:    totalRacks,
		clients:       make(map[uuid.UUID]model.Client),
		orders:        make(map[uuid.UUID]model.Order),
		catalog:       model.NewCatalog(),
		racks:         make(map[string]model.Rack),
		rackIndex:     make(map[string]model.RackAssignment),
		serviceCounts: make(map[string]int),
		statusCounts:  make(map[model.OrderStatus]int),
		received:      decimal.Zero,
	}
}

func (l *Ledger) TotalRacks() int {
	return l.totalRacks
}

// --- collection replacement ---

func (l *Ledger) ReplaceClients(clients []model.Client) {
	next := make(map[uuid.UUID]model.Client, len(clients))
	for _, c := range clients {
		next[c.ID] = c
	}
	l.mu.Lock()
	l.clients = next
	l.mu.Unlock()
}

func (l *Ledger) ReplaceCatalog(catalog model.Catalog) {
	l.mu.Lock()
	l.catalog = catalog
	l.mu.Unlock()
}

func (l *Ledger) ReplaceRacks(racks []model.Rack) {
	next := make(map[string]model.Rack, len(racks))
	for _, r := range racks {
		next[r.Number] = r
	}
	l.mu.Lock()
	l.racks = next
	l.mu.Unlock()
}

// ReplaceOrders swaps in a freshly loaded order set and rebuilds every index.
// A set in which two in-shop items share a rack is rejected and the previous
// state is kept.
func (l *Ledger) ReplaceOrders(orders []model.Order) error {
	if _, err := OccupiedRacks(orders); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = make(map[uuid.UUID]model.Order, len(orders))
	l.rackIndex = make(map[string]model.RackAssignment)
	l.serviceCounts = make(map[string]int)
	l.statusCounts = make(map[model.OrderStatus]int)
	l.received = decimal.Zero
	for _, o := range orders {
		l.add(o.Clone())
	}
	return nil
}

// --- single entity updates ---

func (l *Ledger) PutClient(c model.Client) {
	l.mu.Lock()
	l.clients[c.ID] = c
	l.mu.Unlock()
}

func (l *Ledger) RemoveClient(id uuid.UUID) {
	l.mu.Lock()
	delete(l.clients, id)
	l.mu.Unlock()
}

func (l *Ledger) PutService(s model.ServiceType) {
	l.mu.Lock()
	l.catalog = l.catalog.With(s)
	l.mu.Unlock()
}

func (l *Ledger) RemoveService(id string) {
	l.mu.Lock()
	l.catalog = l.catalog.Without(id)
	l.mu.Unlock()
}

func (l *Ledger) PutRack(r model.Rack) {
	l.mu.Lock()
	l.racks[r.Number] = r
	l.mu.Unlock()
}

// PutOrder inserts or replaces an order confirmed by the store. The order is
// always applied; if one of its racks is indexed to another order the new
// claim wins and ErrRackConflict tells the caller the ledger needs a reload.
func (l *Ledger) PutOrder(o model.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if prev, ok := l.orders[o.ID]; ok {
		l.remove(prev)
	}
	var conflict error
	if o.Status.HoldsRacks() {
		for _, item := range o.Items {
			if holder, taken := l.rackIndex[item.Rack]; taken && holder.OrderID != o.ID && conflict == nil {
				conflict = fmt.Errorf("%w: %s held by %s and %s", domainErrors.ErrRackConflict, item.Rack, holder.OrderNumber, o.Number)
			}
		}
	}
	l.add(o.Clone())
	return conflict
}

func (l *Ledger) RemoveOrder(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prev, ok := l.orders[id]; ok {
		l.remove(prev)
	}
}

func (l *Ledger) add(o model.Order) {
	l.orders[o.ID] = o
	l.statusCounts[o.Status]++
	l.received = l.received.Add(o.AmountPaid)
	for _, item := range o.Items {
		l.serviceCounts[item.ServiceID]++
		if o.Status.HoldsRacks() {
			l.rackIndex[item.Rack] = assignmentOf(o, item)
		}
	}
}

func (l *Ledger) remove(o model.Order) {
	delete(l.orders, o.ID)
	l.statusCounts[o.Status]--
	l.received = l.received.Sub(o.AmountPaid)
	for _, item := range o.Items {
		l.serviceCounts[item.ServiceID]--
		if holder, ok := l.rackIndex[item.Rack]; ok && holder.OrderID == o.ID {
			delete(l.rackIndex, item.Rack)
		}
	}
}

// --- validation ---

// CheckOrder validates a new or edited order against the current state:
// the client must exist, every line item needs a brand, a known service and
// a valid rack, and no rack may be claimed twice or held by another in-shop
// order. Racks under maintenance or out of service cannot take new items.
func (l *Ledger) CheckOrder(o model.Order) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.clients[o.ClientID]; !ok {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnknownClient, o.ClientID)
	}
	if len(o.Items) == 0 {
		return domainErrors.Invalid("order needs at least one line item")
	}
	if o.AmountPaid.IsNegative() {
		return fmt.Errorf("%w: amount paid cannot be negative", domainErrors.ErrInvalidAmount)
	}

	current := l.orders[o.ID]
	seen := make(map[string]int, len(o.Items))
	for i, item := range o.Items {
		n := i + 1
		switch {
		case strings.TrimSpace(item.Brand) == "":
			return domainErrors.Invalid("item %d: brand is required", n)
		case item.ServiceID == "":
			return domainErrors.Invalid("item %d: service is required", n)
		case item.Rack == "":
			return domainErrors.Invalid("item %d: rack is required", n)
		}
		if _, ok := l.catalog.Lookup(item.ServiceID); !ok {
			return fmt.Errorf("item %d: %w: %s", n, domainErrors.ErrUnknownService, item.ServiceID)
		}
		if !ValidRack(item.Rack, l.totalRacks) {
			return fmt.Errorf("item %d: %w: %s", n, domainErrors.ErrUnknownRack, item.Rack)
		}
		if other, dup := seen[item.Rack]; dup {
			return fmt.Errorf("items %d and %d: %w: %s", other, n, domainErrors.ErrRackOccupied, item.Rack)
		}
		seen[item.Rack] = n

		if !o.Status.HoldsRacks() {
			continue
		}
		if holder, taken := l.rackIndex[item.Rack]; taken && holder.OrderID != o.ID {
			return fmt.Errorf("item %d: %w: %s holds %s", n, domainErrors.ErrRackOccupied, holder.OrderNumber, item.Rack)
		}
		if holdsRack(current, item.Rack) {
			continue
		}
		if meta, ok := l.racks[item.Rack]; ok && !meta.Status.Assignable() {
			return fmt.Errorf("item %d: %w: %s is %s", n, domainErrors.ErrRackUnavailable, item.Rack, meta.Status)
		}
	}
	return nil
}

func holdsRack(o model.Order, rack string) bool {
	if !o.Status.HoldsRacks() {
		return false
	}
	for _, item := range o.Items {
		if item.Rack == rack {
			return true
		}
	}
	return false
}

// --- queries ---

func (l *Ledger) Client(id uuid.UUID) (model.Client, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.clients[id]
	return c, ok
}

// Clients lists clients newest first.
func (l *Ledger) Clients() []model.Client {
	l.mu.RLock()
	out := make([]model.Client, 0, len(l.clients))
	for _, c := range l.clients {
		out = append(out, c)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// HasOrders reports whether any order references the client.
func (l *Ledger) HasOrders(clientID uuid.UUID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ClientID == clientID {
			return true
		}
	}
	return false
}

func (l *Ledger) Catalog() model.Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.catalog
}

// ServiceInUse reports whether any line item references the service.
func (l *Ledger) ServiceInUse(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.serviceCounts[id] > 0
}

func (l *Ledger) Order(id uuid.UUID) (model.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	o, ok := l.orders[id]
	if !ok {
		return model.Order{}, false
	}
	return o.Clone(), true
}

// Orders returns every order newest first.
func (l *Ledger) Orders() []model.Order {
	l.mu.RLock()
	out := make([]model.Order, 0, len(l.orders))
	for _, o := range l.orders {
		out = append(out, o.Clone())
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Number > out[j].Number
	})
	return out
}

// Summary enriches an order with its client name and derived amounts.
func (l *Ledger) Summary(o model.Order) model.OrderSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.summary(o)
}

func (l *Ledger) summary(o model.Order) model.OrderSummary {
	total := Total(o, l.catalog)
	return model.OrderSummary{
		Order:      o,
		ClientName: l.clients[o.ClientID].Name,
		Total:      total,
		Pending:    total.Sub(o.AmountPaid),
	}
}

// Summaries lists every order newest first with derived amounts.
func (l *Ledger) Summaries() []model.OrderSummary {
	orders := l.Orders()
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, l.summary(o))
	}
	return out
}

// OccupiedRacks returns a copy of the rack index.
func (l *Ledger) OccupiedRacks() map[string]model.RackAssignment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]model.RackAssignment, len(l.rackIndex))
	for rack, a := range l.rackIndex {
		out[rack] = a
	}
	return out
}

func (l *Ledger) FreeRacks() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return subtract(ListAllRacks(l.totalRacks), l.rackIndex)
}

func (l *Ledger) RackInfo(rack string) (model.RackAssignment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.rackIndex[rack]
	return a, ok
}

// RackView describes one rack of the configured universe.
func (l *Ledger) RackView(rack string) (model.RackView, error) {
	if !ValidRack(rack, l.totalRacks) {
		return model.RackView{}, fmt.Errorf("%w: rack %s", domainErrors.ErrNotFound, rack)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rackView(rack), nil
}

// RackViews describes every rack in ListAllRacks order.
func (l *Ledger) RackViews() []model.RackView {
	all := ListAllRacks(l.totalRacks)
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.RackView, 0, len(all))
	for _, rack := range all {
		out = append(out, l.rackView(rack))
	}
	return out
}

func (l *Ledger) rackView(rack string) model.RackView {
	meta, ok := l.racks[rack]
	if !ok {
		meta = model.Rack{Number: rack, Capacity: 1, Status: model.RackStatusAvailable}
	}
	view := model.RackView{Rack: meta}
	if a, taken := l.rackIndex[rack]; taken {
		view.Status = model.RackStatusOccupied
		view.Assignment = &a
	}
	return view
}

// Metrics reads the dashboard aggregates from the running accumulators.
func (l *Ledger) Metrics() model.Metrics {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return buildMetrics(l.catalog, l.serviceCounts, l.statusCounts, l.received, len(l.orders), l.totalRacks, inUniverse(l.rackIndex, l.totalRacks))
}
