package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
	testhelpers "github.com/xXDatiXx/pimp-cleaner-25/internal/test"
)

func TestClientUseCaseCreate(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	l := ledger.New(50)
	uc := NewClientUseCase(repo, l)

	created, err := uc.Create(context.Background(), model.Client{Name: "  Ana ", Email: "ana@example.com", Phone: " +1555 "})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == uuid.Nil || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps assigned: %+v", created)
	}
	if created.Name != "Ana" || created.Phone != "+1555" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if _, ok := repo.Clients[created.ID]; !ok {
		t.Fatalf("client not persisted")
	}
	if got, err := uc.Get(created.ID); err != nil || got.Email != "ana@example.com" {
		t.Fatalf("client not visible in ledger: %+v %v", got, err)
	}
}

func TestClientUseCaseValidation(t *testing.T) {
	uc := NewClientUseCase(testhelpers.NewClientRepositoryStub(), ledger.New(50))

	cases := []model.Client{
		{Name: "", Email: "a@b.c"},
		{Name: "Ana", Email: ""},
		{Name: "Ana", Email: "not-an-email"},
		{Name: "Ana", Email: "Ana <ana@example.com>"},
	}
	for _, c := range cases {
		if _, err := uc.Create(context.Background(), c); !errors.Is(err, domainErrors.ErrValidation) {
			t.Errorf("expected validation error for %+v, got %v", c, err)
		}
	}
}

func TestClientUseCaseUpdate(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	uc := NewClientUseCase(repo, ledger.New(50))
	ctx := context.Background()

	created, err := uc.Create(ctx, model.Client{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	updated, err := uc.Update(ctx, created.ID, model.Client{Name: "Ana Maria", Email: "am@example.com", Address: "Main St 1"})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != "Ana Maria" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if got := uc.List(); len(got) != 1 || got[0].Address != "Main St 1" {
		t.Fatalf("ledger not updated: %+v", got)
	}

	if _, err := uc.Update(ctx, uuid.New(), model.Client{Name: "X", Email: "x@example.com"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientUseCaseDelete(t *testing.T) {
	repo := testhelpers.NewClientRepositoryStub()
	l := ledger.New(50)
	l.ReplaceCatalog(shopCatalog)
	uc := NewClientUseCase(repo, l)
	ctx := context.Background()

	busy, _ := uc.Create(ctx, testhelpers.RandomClient())
	idle, _ := uc.Create(ctx, testhelpers.RandomClient())
	if err := l.PutOrder(testhelpers.RandomOrder(busy.ID, "clean", "A1", "A2")); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	if err := uc.Delete(ctx, busy.ID); !errors.Is(err, domainErrors.ErrClientHasOrders) {
		t.Fatalf("expected client with orders to be kept, got %v", err)
	}
	if err := uc.Delete(ctx, idle.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := uc.Get(idle.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected deleted client to be gone, got %v", err)
	}

	repo.Err = errors.New("db down")
	if err := uc.Delete(ctx, busy.ID); !errors.Is(err, domainErrors.ErrClientHasOrders) {
		t.Fatalf("orders check must run before the store, got %v", err)
	}
}
