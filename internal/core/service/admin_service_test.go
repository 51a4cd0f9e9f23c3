package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

func newAdminFixture() (*AdminService, *stubUserRepo, *stubVendorRepo, *stubItemRepo, *stubCatalogCache) {
	users := newStubUserRepo()
	vendors := newStubVendorRepo()
	items := newStubItemRepo()
	cache := newStubCatalogCache()
	svc := NewAdminService(users, vendors, items, cache, zerolog.Nop())
	return svc, users, vendors, items, cache
}

func TestAdminService_CreateUser_AnyRole(t *testing.T) {
	svc, _, _, _, _ := newAdminFixture()

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Root", Email: "root@x.com", Password: "secret1", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Dup", Email: "root@x.com", Password: "secret2",
	}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAdminService_UpdateUser_PartialAndRoleChange(t *testing.T) {
	svc, users, _, _, _ := newAdminFixture()
	seeded, _ := users.Create(context.Background(), &domain.User{
		Name: "Alice", Email: "a@x.com", PasswordHash: "h", Role: domain.RoleUser,
	})

	updated, err := svc.UpdateUser(context.Background(), seeded.ID, ports.UpdateUserInput{Role: domain.RoleVendor})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Role != domain.RoleVendor {
		t.Fatalf("role not updated: %s", updated.Role)
	}
	if updated.Name != "Alice" || updated.Email != "a@x.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.UpdateUser(context.Background(), "missing", ports.UpdateUserInput{Name: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_DeleteUser_Hard(t *testing.T) {
	svc, users, _, _, _ := newAdminFixture()
	seeded, _ := users.Create(context.Background(), &domain.User{
		Name: "Gone", Email: "gone@x.com", PasswordHash: "h", Role: domain.RoleUser,
	})

	if err := svc.DeleteUser(context.Background(), seeded.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
	if err := svc.DeleteUser(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestAdminService_UpdateMembership(t *testing.T) {
	svc, _, vendors, _, cache := newAdminFixture()
	seeded, _ := vendors.Create(context.Background(), &domain.Vendor{
		UserID: "user-1", CompanyName: "Acme", MembershipStatus: domain.MembershipPending, CreatedAt: time.Now(),
	})

	updated, err := svc.UpdateMembership(context.Background(), seeded.ID, domain.MembershipActive)
	if err != nil {
		t.Fatalf("UpdateMembership returned error: %v", err)
	}
	if updated.MembershipStatus != domain.MembershipActive {
		t.Fatalf("membership not updated: %s", updated.MembershipStatus)
	}
	if cache.invalidated == 0 {
		t.Fatalf("membership change must invalidate the catalog cache")
	}
}

func TestAdminService_ModerateItem(t *testing.T) {
	svc, _, _, items, cache := newAdminFixture()
	seeded, _ := items.Create(context.Background(), &domain.Item{
		VendorID: "vendor-1", Name: "Roses", Price: 10, Status: domain.ItemPending,
	})

	approved, err := svc.ApproveItem(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("ApproveItem returned error: %v", err)
	}
	if approved.Status != domain.ItemApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	rejected, err := svc.RejectItem(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("RejectItem returned error: %v", err)
	}
	if rejected.Status != domain.ItemRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}

	if cache.invalidated < 2 {
		t.Fatalf("moderation must invalidate the catalog cache")
	}

	if _, err := svc.ApproveItem(context.Background(), "missing"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
