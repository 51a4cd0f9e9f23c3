package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// CreateItemInput is a new listing from a vendor. It always enters the
// catalog in pending status.
type CreateItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// UpdateItemInput applies partial updates. Description distinguishes
// "not provided" (nil) from "clear the field" (empty string); Price nil
// means unchanged.
type UpdateItemInput struct {
	Name        string
	Description *string
	Price       *float64
	Status      domain.ItemStatus
}

// VendorProfile is the vendor dashboard view joining the profile with its
// owning user record.
type VendorProfile struct {
	Vendor    domain.Vendor
	UserName  string
	UserEmail string
}

// VendorService covers the vendor-facing surface. Every method operates on
// the vendor profile belonging to the calling user; a profile is created on
// first use for users holding the vendor role without one.
type VendorService interface {
	Profile(ctx context.Context, user *domain.User) (*VendorProfile, error)
	ListItems(ctx context.Context, user *domain.User) ([]domain.Item, error)
	CreateItem(ctx context.Context, user *domain.User, input CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, user *domain.User, itemID string, input UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, user *domain.User, itemID string) error
	ListRequests(ctx context.Context, user *domain.User) ([]domain.Order, error)
	UpdateRequestStatus(ctx context.Context, user *domain.User, orderID string, status domain.OrderStatus) (*domain.Order, error)
}
