package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// OrderService implements order placement and the two buyer-side
// transitions: cancel and pay.
type OrderService struct {
	orders ports.OrderRepository
	items  ports.ItemRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, items ports.ItemRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, items: items, logger: logger}
}

func (s *OrderService) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Create places an order. The total is computed from current item prices,
// and each line snapshots its unit price. With an idempotency key, a
// resubmission returns the order created the first time.
func (s *OrderService) Create(ctx context.Context, userID string, input ports.CreateOrderInput) (*domain.Order, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("order_id", existing.ID).Msg("idempotent replay")
			return existing, nil
		}
		if !errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
	}

	var total float64
	lines := make([]domain.OrderItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		item, err := s.items.FindByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		total += item.Price * float64(line.Quantity)
		lines = append(lines, domain.OrderItem{ItemID: item.ID, Quantity: line.Quantity, Price: item.Price})
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		UserID:         userID,
		VendorID:       input.VendorID,
		Items:          lines,
		TotalAmount:    total,
		PaymentStatus:  domain.PaymentPending,
		OrderStatus:    domain.OrderPending,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("user_id", userID).Float64("total", total).Msg("order placed")
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.ownOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.OrderStatus != domain.OrderPending {
		return nil, domain.ErrOrderNotCancellable
	}

	order.OrderStatus = domain.OrderCancelled
	return s.orders.Update(ctx, order)
}

func (s *OrderService) Pay(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.ownOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = domain.PaymentCompleted
	return s.orders.Update(ctx, order)
}

func (s *OrderService) ownOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
