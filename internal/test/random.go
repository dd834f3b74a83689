package test

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

var brands = []string{"Nike", "Adidas", "Dr. Martens", "Converse", "Vans", "New Balance", "Timberland"}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomClient returns a client with a fresh id and unique contact details.
func RandomClient() model.Client {
	n := randomIntn(1_000_000)
	now := time.Now().UTC()
	return model.Client{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("Client %06d", n),
		Email:     fmt.Sprintf("client%06d@example.com", n),
		Phone:     fmt.Sprintf("+1555%06d", n),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RandomBrand picks a shoe brand.
func RandomBrand() string {
	return brands[randomIntn(len(brands))]
}

// RandomOrder returns an unpaid received order of client with one item of
// serviceID per rack.
func RandomOrder(clientID uuid.UUID, serviceID string, racks ...string) model.Order {
	now := time.Now().UTC()
	o := model.Order{
		ID:            uuid.New(),
		Number:        fmt.Sprintf("ORD-%d", now.UnixMilli()+int64(randomIntn(1000))),
		ClientID:      clientID,
		Status:        model.OrderStatusReceived,
		PaymentStatus: model.PaymentStatusPending,
		AmountPaid:    decimal.Zero,
		ReceivedAt:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, rack := range racks {
		o.Items = append(o.Items, model.LineItem{ID: uuid.New(), Brand: RandomBrand(), ServiceID: serviceID, Rack: rack})
	}
	return o
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
