package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// VendorRepository persists vendor profiles.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	FindByID(ctx context.Context, id string) (*domain.Vendor, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Vendor, error)
	Update(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	List(ctx context.Context) ([]domain.Vendor, error)
	ListByStatus(ctx context.Context, status domain.MembershipStatus) ([]domain.Vendor, error)
}
