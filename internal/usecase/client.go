package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
)

// ClientUseCase manages the client book.
type ClientUseCase struct {
	clients repository.ClientRepository
	ledger  *ledger.Ledger
	now     func() time.Time
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository, l *ledger.Ledger) *ClientUseCase {
	return &ClientUseCase{clients: clients, ledger: l, now: time.Now}
}

// List returns clients newest first.
func (u *ClientUseCase) List() []model.Client {
	return u.ledger.Clients()
}

func (u *ClientUseCase) Get(id uuid.UUID) (*model.Client, error) {
	c, ok := u.ledger.Client(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

// Create validates and stores a new client.
func (u *ClientUseCase) Create(ctx context.Context, c model.Client) (*model.Client, error) {
	if err := normalizeClient(&c); err != nil {
		return nil, err
	}
	now := u.now()
	c.ID = uuid.New()
	c.CreatedAt, c.UpdatedAt = now, now

	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	u.ledger.PutClient(*created)
	return created, nil
}

// Update replaces the contact details of an existing client.
func (u *ClientUseCase) Update(ctx context.Context, id uuid.UUID, c model.Client) (*model.Client, error) {
	current, ok := u.ledger.Client(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if err := normalizeClient(&c); err != nil {
		return nil, err
	}
	c.ID = id
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = u.now()

	updated, err := u.clients.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	u.ledger.PutClient(*updated)
	return updated, nil
}

// Delete removes a client that has no orders.
func (u *ClientUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if u.ledger.HasOrders(id) {
		return domainErrors.ErrClientHasOrders
	}
	if err := u.clients.Delete(ctx, id); err != nil {
		return err
	}
	u.ledger.RemoveClient(id)
	return nil
}

func normalizeClient(c *model.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)

	if c.Name == "" {
		return domainErrors.Invalid("client name is required")
	}
	if c.Email == "" {
		return domainErrors.Invalid("client email is required")
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email {
		return domainErrors.Invalid("invalid email %q", c.Email)
	}
	return nil
}
