package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// GuestRepository persists RSVP guest-list entries.
type GuestRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Guest, error)
	FindByID(ctx context.Context, id string) (*domain.Guest, error)
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
}
