package usecase

import (
	"context"
	"regexp"
	"strings"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
)

var serviceIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// CatalogUseCase manages the priced services the shop offers.
type CatalogUseCase struct {
	services repository.ServiceRepository
	ledger   *ledger.Ledger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(services repository.ServiceRepository, l *ledger.Ledger) *CatalogUseCase {
	return &CatalogUseCase{services: services, ledger: l}
}

// List returns services in display order.
func (u *CatalogUseCase) List() []model.ServiceType {
	return u.ledger.Catalog().Services()
}

// Create adds a service. Its id is a lowercase slug.
func (u *CatalogUseCase) Create(ctx context.Context, s model.ServiceType) (*model.ServiceType, error) {
	s.ID = strings.TrimSpace(s.ID)
	if !serviceIDPattern.MatchString(s.ID) {
		return nil, domainErrors.Invalid("service id %q must be a lowercase slug", s.ID)
	}
	if err := normalizeService(&s); err != nil {
		return nil, err
	}
	if _, exists := u.ledger.Catalog().Lookup(s.ID); exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	created, err := u.services.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	u.ledger.PutService(*created)
	return created, nil
}

// Update renames or reprices a service. Prices apply to every order that uses it.
func (u *CatalogUseCase) Update(ctx context.Context, id string, s model.ServiceType) (*model.ServiceType, error) {
	if _, ok := u.ledger.Catalog().Lookup(id); !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.ID = id
	if err := normalizeService(&s); err != nil {
		return nil, err
	}

	updated, err := u.services.Update(ctx, s)
	if err != nil {
		return nil, err
	}
	u.ledger.PutService(*updated)
	return updated, nil
}

// Delete removes a service no line item references.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if u.ledger.ServiceInUse(id) {
		return domainErrors.ErrServiceInUse
	}
	if err := u.services.Delete(ctx, id); err != nil {
		return err
	}
	u.ledger.RemoveService(id)
	return nil
}

func normalizeService(s *model.ServiceType) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return domainErrors.Invalid("service name is required")
	}
	if s.Price.IsNegative() {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
