package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// OrderLineInput selects an item and quantity for a new order.
type OrderLineInput struct {
	ItemID   string
	Quantity int
}

// CreateOrderInput is a new order against a single vendor. The total is
// never taken from the client; it is computed from current item prices.
// IdempotencyKey, when set, makes resubmission return the original order.
type CreateOrderInput struct {
	VendorID       string
	Lines          []OrderLineInput
	IdempotencyKey string
}

type OrderService interface {
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Create(ctx context.Context, userID string, input CreateOrderInput) (*domain.Order, error)
	// Cancel rejects orders that have progressed past Pending.
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
	// Pay flips the payment status field. No settlement happens here.
	Pay(ctx context.Context, userID, orderID string) (*domain.Order, error)
}
