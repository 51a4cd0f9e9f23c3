package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// CartLine is a cart entry joined with its current listing.
type CartLine struct {
	ID       string
	ItemID   string
	Quantity int
	Item     *domain.Item
}

type CartService interface {
	Get(ctx context.Context, userID string) ([]CartLine, error)
	// Add puts quantity of itemID into the cart, merging into an existing
	// line when one exists.
	Add(ctx context.Context, userID, itemID string, quantity int) (*CartLine, error)
	Remove(ctx context.Context, userID, cartItemID string) error
	Clear(ctx context.Context, userID string) error
}
