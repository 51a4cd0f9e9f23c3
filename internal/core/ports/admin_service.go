package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// CreateUserInput is the admin-initiated account creation payload.
// Any role is allowed here, unlike self-registration.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput applies partial updates; empty fields are left unchanged.
type UpdateUserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// UpdateVendorInput applies partial updates; empty fields are left unchanged.
type UpdateVendorInput struct {
	CompanyName      string
	Category         string
	MembershipStatus domain.MembershipStatus
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, id string, input UpdateVendorInput) (*domain.Vendor, error)
	UpdateMembership(ctx context.Context, id string, status domain.MembershipStatus) (*domain.Vendor, error)

	ListItems(ctx context.Context) ([]domain.Item, error)
	ApproveItem(ctx context.Context, id string) (*domain.Item, error)
	RejectItem(ctx context.Context, id string) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
