package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// VendorService implements the seller dashboard: listings, incoming order
// requests and the vendor profile.
type VendorService struct {
	vendors ports.VendorRepository
	items   ports.ItemRepository
	orders  ports.OrderRepository
	cache   ports.CatalogCache
	logger  zerolog.Logger
}

func NewVendorService(vendors ports.VendorRepository, items ports.ItemRepository, orders ports.OrderRepository, cache ports.CatalogCache, logger zerolog.Logger) *VendorService {
	return &VendorService{vendors: vendors, items: items, orders: orders, cache: cache, logger: logger}
}

// profileFor loads the caller's vendor profile, creating one on first use
// for accounts that hold the vendor role but have no profile yet.
func (s *VendorService) profileFor(ctx context.Context, user *domain.User) (*domain.Vendor, error) {
	if user.Role != domain.RoleVendor {
		return nil, domain.ErrForbidden
	}

	vendor, err := s.vendors.FindByUserID(ctx, user.ID)
	if err == nil {
		return vendor, nil
	}
	if !errors.Is(err, domain.ErrVendorNotFound) {
		return nil, err
	}

	created, err := s.vendors.Create(ctx, &domain.Vendor{
		UserID:           user.ID,
		CompanyName:      fmt.Sprintf("%s's Company", user.Name),
		MembershipStatus: domain.MembershipActive,
		CreatedAt:        time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("vendor profile auto-created")
	return created, nil
}

func (s *VendorService) Profile(ctx context.Context, user *domain.User) (*ports.VendorProfile, error) {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return nil, err
	}
	return &ports.VendorProfile{Vendor: *vendor, UserName: user.Name, UserEmail: user.Email}, nil
}

func (s *VendorService) ListItems(ctx context.Context, user *domain.User) ([]domain.Item, error) {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.items.ListByVendor(ctx, vendor.ID)
}

func (s *VendorService) CreateItem(ctx context.Context, user *domain.User, input ports.CreateItemInput) (*domain.Item, error) {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, &domain.Item{
		VendorID:    vendor.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Status:      domain.ItemPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("vendor_id", vendor.ID).Str("item_id", item.ID).Msg("item listed for moderation")
	return item, nil
}

// ownItem fetches an item and checks it belongs to the calling vendor.
// A foreign item surfaces as not-found, so vendors cannot probe each
// other's listing ids.
func (s *VendorService) ownItem(ctx context.Context, vendorID, itemID string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.VendorID != vendorID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (s *VendorService) UpdateItem(ctx context.Context, user *domain.User, itemID string, input ports.UpdateItemInput) (*domain.Item, error) {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return nil, err
	}

	item, err := s.ownItem(ctx, vendor.ID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Status != "" {
		item.Status = input.Status
	}

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return updated, nil
}

func (s *VendorService) DeleteItem(ctx context.Context, user *domain.User, itemID string) error {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return err
	}

	if _, err := s.ownItem(ctx, vendor.ID, itemID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *VendorService) ListRequests(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByVendor(ctx, vendor.ID)
}

func (s *VendorService) UpdateRequestStatus(ctx context.Context, user *domain.User, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	vendor, err := s.profileFor(ctx, user)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.VendorID != vendor.ID {
		return nil, domain.ErrOrderNotFound
	}

	order.OrderStatus = status
	return s.orders.Update(ctx, order)
}

func (s *VendorService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
