package model

import "github.com/shopspring/decimal"

// ServiceType is a priced unit of repair or cleaning work.
type ServiceType struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Catalog is an ordered, read-only set of service types.
type Catalog struct {
	services []ServiceType
	index    map[string]int
}

// NewCatalog keeps the first occurrence of each identifier in insertion order.
func NewCatalog(services ...ServiceType) Catalog {
	c := Catalog{index: make(map[string]int, len(services))}
	for _, s := range services {
		if _, dup := c.index[s.ID]; dup {
			continue
		}
		c.index[s.ID] = len(c.services)
		c.services = append(c.services, s)
	}
	return c
}

func (c Catalog) Lookup(id string) (ServiceType, bool) {
	i, ok := c.index[id]
	if !ok {
		return ServiceType{}, false
	}
	return c.services[i], true
}

func (c Catalog) Price(id string) (decimal.Decimal, bool) {
	s, ok := c.Lookup(id)
	return s.Price, ok
}

// Services returns the catalog entries in insertion order.
func (c Catalog) Services() []ServiceType {
	return append([]ServiceType(nil), c.services...)
}

func (c Catalog) Len() int {
	return len(c.services)
}

// With returns a catalog where s replaces the entry with the same id or is appended.
func (c Catalog) With(s ServiceType) Catalog {
	services := c.Services()
	if i, ok := c.index[s.ID]; ok {
		services[i] = s
	} else {
		services = append(services, s)
	}
	return NewCatalog(services...)
}

// Without returns a catalog lacking id.
func (c Catalog) Without(id string) Catalog {
	services := make([]ServiceType, 0, len(c.services))
	for _, s := range c.services {
		if s.ID != id {
			services = append(services, s)
		}
	}
	return NewCatalog(services...)
}
