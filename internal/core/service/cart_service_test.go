package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

func newCartFixture(t *testing.T) (*CartService, *stubItemRepo, *domain.Item) {
	t.Helper()
	carts := newStubCartRepo()
	items := newStubItemRepo()
	svc := NewCartService(carts, items, zerolog.Nop())
	item := seedItem(t, items, "vendor-1", 12)
	return svc, items, item
}

func TestCartService_AddAndGet(t *testing.T) {
	svc, _, item := newCartFixture(t)

	line, err := svc.Add(context.Background(), "user-1", item.ID, 2)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if line.Quantity != 2 || line.Item == nil || line.Item.ID != item.ID {
		t.Fatalf("unexpected line: %+v", line)
	}

	lines, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}

func TestCartService_Add_MergesQuantity(t *testing.T) {
	svc, _, item := newCartFixture(t)

	if _, err := svc.Add(context.Background(), "user-1", item.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	merged, err := svc.Add(context.Background(), "user-1", item.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if merged.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", merged.Quantity)
	}

	lines, _ := svc.Get(context.Background(), "user-1")
	if len(lines) != 1 {
		t.Fatalf("merge must not create a second line, got %d", len(lines))
	}
}

func TestCartService_Add_UnknownItem(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	if _, err := svc.Add(context.Background(), "user-1", "missing", 1); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCartService_Remove_OwnershipScoped(t *testing.T) {
	svc, _, item := newCartFixture(t)

	line, err := svc.Add(context.Background(), "user-1", item.ID, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Remove(context.Background(), "user-2", line.ID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("foreign remove: expected ErrCartItemNotFound, got %v", err)
	}
	if err := svc.Remove(context.Background(), "user-1", line.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
}

func TestCartService_Clear(t *testing.T) {
	svc, items, item := newCartFixture(t)
	other := seedItem(t, items, "vendor-1", 3)

	if _, err := svc.Add(context.Background(), "user-1", item.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add(context.Background(), "user-1", other.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Clear(context.Background(), "user-1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	lines, _ := svc.Get(context.Background(), "user-1")
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}
}
