package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// ItemRepository persists product listings.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Item, error)
	ListAll(ctx context.Context) ([]domain.Item, error)
	// ListApproved returns approved items restricted to the given vendors,
	// optionally filtered by category. An empty category means no filter.
	ListApproved(ctx context.Context, vendorIDs []string, category string) ([]domain.Item, error)
}
