package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// CatalogService is the buyer-facing, read-only marketplace view: active
// vendors and approved listings only.
type CatalogService interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	ListVendorItems(ctx context.Context, vendorID, category string) ([]domain.Item, error)
	// ListItems returns approved items across all active vendors, optionally
	// filtered by category.
	ListItems(ctx context.Context, category string) ([]domain.Item, error)
}
