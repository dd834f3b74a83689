package dto

import "github.com/shopspring/decimal"

// ServiceRequest describes POST/PUT /api/services payload. ID is taken from
// the path on updates.
type ServiceRequest struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ServiceResponse describes a catalog entry.
type ServiceResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
