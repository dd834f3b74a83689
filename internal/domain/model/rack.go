package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RackStatus is the state of a physical storage slot.
type RackStatus string

const (
	RackStatusAvailable    RackStatus = "available"
	RackStatusOccupied     RackStatus = "occupied"
	RackStatusMaintenance  RackStatus = "maintenance"
	RackStatusOutOfService RackStatus = "out_of_service"
)

func ParseRackStatus(raw string) (RackStatus, error) {
	switch status := RackStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case RackStatusAvailable, RackStatusOccupied, RackStatusMaintenance, RackStatusOutOfService:
		return status, nil
	default:
		return "", fmt.Errorf("unknown rack status %q", raw)
	}
}

// Assignable reports whether a new line item may be placed on a rack with this manual status.
func (s RackStatus) Assignable() bool {
	return s == "" || s == RackStatusAvailable
}

// Rack holds operator-maintained metadata. Occupancy is never stored here.
type Rack struct {
	Number      string
	Location    string
	Description string
	Capacity    int
	Status      RackStatus
	UpdatedAt   time.Time
}

// RackAssignment names the line item currently holding a rack.
type RackAssignment struct {
	Rack        string
	OrderID     uuid.UUID
	OrderNumber string
	ItemID      uuid.UUID
	Brand       string
}

// RackView combines metadata with live occupancy.
type RackView struct {
	Rack
	Assignment *RackAssignment
}
