package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// CatalogService is the buyer-facing marketplace view. Only active vendors
// and approved listings are ever returned. The cross-vendor listing runs
// through a short-TTL read-through cache; cache trouble degrades to a store
// read, never an error.
type CatalogService struct {
	vendors ports.VendorRepository
	items   ports.ItemRepository
	cache   ports.CatalogCache
	logger  zerolog.Logger
}

func NewCatalogService(vendors ports.VendorRepository, items ports.ItemRepository, cache ports.CatalogCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{vendors: vendors, items: items, cache: cache, logger: logger}
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.ListByStatus(ctx, domain.MembershipActive)
}

func (s *CatalogService) ListVendorItems(ctx context.Context, vendorID, category string) ([]domain.Item, error) {
	if _, err := s.vendors.FindByID(ctx, vendorID); err != nil {
		return nil, err
	}
	return s.items.ListApproved(ctx, []string{vendorID}, category)
}

func (s *CatalogService) ListItems(ctx context.Context, category string) ([]domain.Item, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, category)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	active, err := s.vendors.ListByStatus(ctx, domain.MembershipActive)
	if err != nil {
		return nil, err
	}

	vendorIDs := make([]string, 0, len(active))
	for _, v := range active {
		vendorIDs = append(vendorIDs, v.ID)
	}
	if len(vendorIDs) == 0 {
		return []domain.Item{}, nil
	}

	items, err := s.items.ListApproved(ctx, vendorIDs, category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, category, items); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}

	return items, nil
}
