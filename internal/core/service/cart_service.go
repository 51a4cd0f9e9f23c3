package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// CartService manages a user's pending selections.
type CartService struct {
	carts  ports.CartRepository
	items  ports.ItemRepository
	logger zerolog.Logger
}

func NewCartService(carts ports.CartRepository, items ports.ItemRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, items: items, logger: logger}
}

func (s *CartService) Get(ctx context.Context, userID string) ([]ports.CartLine, error) {
	lines, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.CartLine, 0, len(lines))
	for _, line := range lines {
		item, err := s.items.FindByID(ctx, line.ItemID)
		if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		// A deleted listing leaves the line with a nil item rather than
		// failing the whole cart.
		out = append(out, ports.CartLine{ID: line.ID, ItemID: line.ItemID, Quantity: line.Quantity, Item: item})
	}
	return out, nil
}

func (s *CartService) Add(ctx context.Context, userID, itemID string, quantity int) (*ports.CartLine, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	existing, err := s.carts.FindByUserAndItem(ctx, userID, itemID)
	if err == nil {
		merged, err := s.carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
		if err != nil {
			return nil, err
		}
		return &ports.CartLine{ID: merged.ID, ItemID: merged.ItemID, Quantity: merged.Quantity, Item: item}, nil
	}
	if !errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, err
	}

	created, err := s.carts.Create(ctx, &domain.CartItem{UserID: userID, ItemID: itemID, Quantity: quantity})
	if err != nil {
		return nil, err
	}
	return &ports.CartLine{ID: created.ID, ItemID: created.ItemID, Quantity: created.Quantity, Item: item}, nil
}

func (s *CartService) Remove(ctx context.Context, userID, cartItemID string) error {
	line, err := s.carts.FindByID(ctx, cartItemID)
	if err != nil {
		return err
	}
	if line.UserID != userID {
		return domain.ErrCartItemNotFound
	}
	return s.carts.Delete(ctx, cartItemID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.DeleteByUser(ctx, userID)
}
