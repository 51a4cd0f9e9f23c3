package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// CatalogCache is a short-lived cache for the cross-vendor approved-item
// listing. Get returns (nil, false, nil) on a miss; a failing cache must
// degrade to a miss, never block the catalog.
type CatalogCache interface {
	Get(ctx context.Context, category string) ([]domain.Item, bool, error)
	Set(ctx context.Context, category string, items []domain.Item) error
	Invalidate(ctx context.Context) error
}
