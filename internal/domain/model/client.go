package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a shop customer.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
