package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// CartRepository persists per-user cart lines.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	FindByID(ctx context.Context, id string) (*domain.CartItem, error)
	FindByUserAndItem(ctx context.Context, userID, itemID string) (*domain.CartItem, error)
	Create(ctx context.Context, line *domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
