package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// AdminService implements the moderation surface: user accounts, vendor
// memberships and listing approval.
type AdminService struct {
	users   ports.UserRepository
	vendors ports.VendorRepository
	items   ports.ItemRepository
	hasher  *PasswordHasher
	cache   ports.CatalogCache
	logger  zerolog.Logger
}

func NewAdminService(users ports.UserRepository, vendors ports.VendorRepository, items ports.ItemRepository, cache ports.CatalogCache, logger zerolog.Logger) *AdminService {
	return &AdminService{
		users:   users,
		vendors: vendors,
		items:   items,
		hasher:  NewPasswordHasher(),
		cache:   cache,
		logger:  logger,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	return s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		// Takes effect on the user's next resolved request; outstanding
		// tokens keep working because resolution re-fetches this record.
		user.Role = input.Role
	}

	return s.users.Update(ctx, user)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *AdminService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.List(ctx)
}

func (s *AdminService) UpdateVendor(ctx context.Context, id string, input ports.UpdateVendorInput) (*domain.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != "" {
		vendor.CompanyName = input.CompanyName
	}
	if input.Category != "" {
		vendor.Category = input.Category
	}
	if input.MembershipStatus != "" {
		vendor.MembershipStatus = input.MembershipStatus
	}

	updated, err := s.vendors.Update(ctx, vendor)
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return updated, nil
}

func (s *AdminService) UpdateMembership(ctx context.Context, id string, status domain.MembershipStatus) (*domain.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor.MembershipStatus = status
	updated, err := s.vendors.Update(ctx, vendor)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("vendor_id", id).Str("status", string(status)).Msg("membership updated")
	s.invalidateCatalog(ctx)
	return updated, nil
}

func (s *AdminService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.items.ListAll(ctx)
}

func (s *AdminService) ApproveItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.moderateItem(ctx, id, domain.ItemApproved)
}

func (s *AdminService) RejectItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.moderateItem(ctx, id, domain.ItemRejected)
}

func (s *AdminService) moderateItem(ctx context.Context, id string, status domain.ItemStatus) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Status = status
	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", id).Str("status", string(status)).Msg("item moderated")
	s.invalidateCatalog(ctx)
	return updated, nil
}

func (s *AdminService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.items.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *AdminService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
