package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// AddGuestInput creates a guest-list entry; RSVPStatus defaults to Pending.
type AddGuestInput struct {
	GuestName  string
	Email      string
	RSVPStatus domain.RSVPStatus
}

// UpdateGuestInput applies partial updates. Email distinguishes "not
// provided" (nil) from "clear the field" (empty string).
type UpdateGuestInput struct {
	GuestName  string
	Email      *string
	RSVPStatus domain.RSVPStatus
}

type GuestService interface {
	List(ctx context.Context, userID string) ([]domain.Guest, error)
	Add(ctx context.Context, userID string, input AddGuestInput) (*domain.Guest, error)
	Update(ctx context.Context, userID, guestID string, input UpdateGuestInput) (*domain.Guest, error)
	Remove(ctx context.Context, userID, guestID string) error
}
