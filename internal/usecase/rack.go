package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
)

// RackPatch replaces the operator-maintained metadata of a rack.
type RackPatch struct {
	Location    string
	Description string
	Capacity    int
	Status      model.RackStatus
}

// RackUseCase answers rack questions and maintains rack metadata.
type RackUseCase struct {
	racks  repository.RackRepository
	ledger *ledger.Ledger
	now    func() time.Time
}

// NewRackUseCase constructs RackUseCase.
func NewRackUseCase(racks repository.RackRepository, l *ledger.Ledger) *RackUseCase {
	return &RackUseCase{racks: racks, ledger: l, now: time.Now}
}

// List describes every rack in shop order.
func (u *RackUseCase) List() []model.RackView {
	return u.ledger.RackViews()
}

// Free returns racks no in-shop line item holds.
func (u *RackUseCase) Free() []string {
	return u.ledger.FreeRacks()
}

func (u *RackUseCase) Get(rack string) (*model.RackView, error) {
	view, err := u.ledger.RackView(ledger.NormalizeRack(rack))
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Update stores rack metadata. Occupancy is derived from orders and cannot be set.
func (u *RackUseCase) Update(ctx context.Context, rack string, patch RackPatch) (*model.RackView, error) {
	rack = ledger.NormalizeRack(rack)
	if !ledger.ValidRack(rack, u.ledger.TotalRacks()) {
		return nil, fmt.Errorf("%w: rack %s", domainErrors.ErrNotFound, rack)
	}
	if patch.Status == "" {
		patch.Status = model.RackStatusAvailable
	}
	switch patch.Status {
	case model.RackStatusAvailable, model.RackStatusMaintenance, model.RackStatusOutOfService:
	default:
		return nil, fmt.Errorf("%w: rack status %q cannot be set", domainErrors.ErrInvalidStatus, patch.Status)
	}
	if patch.Capacity == 0 {
		patch.Capacity = 1
	}
	if patch.Capacity < 0 {
		return nil, domainErrors.Invalid("capacity must be positive")
	}

	stored, err := u.racks.Upsert(ctx, model.Rack{
		Number:      rack,
		Location:    strings.TrimSpace(patch.Location),
		Description: strings.TrimSpace(patch.Description),
		Capacity:    patch.Capacity,
		Status:      patch.Status,
		UpdatedAt:   u.now(),
	})
	if err != nil {
		return nil, err
	}
	u.ledger.PutRack(*stored)
	return u.Get(rack)
}
