package dto

import "time"

// RackRequest describes PUT /api/racks/:rack payload.
type RackRequest struct {
	Location    string `json:"location"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

// RackAssignmentResponse names the line item holding a rack.
type RackAssignmentResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	ItemID      string `json:"item_id"`
	Brand       string `json:"brand"`
}

// RackResponse describes a rack with its effective status.
type RackResponse struct {
	Number      string                  `json:"number"`
	Location    string                  `json:"location,omitempty"`
	Description string                  `json:"description,omitempty"`
	Capacity    int                     `json:"capacity"`
	Status      string                  `json:"status"`
	UpdatedAt   *time.Time              `json:"updated_at,omitempty"`
	Assignment  *RackAssignmentResponse `json:"assignment,omitempty"`
}
