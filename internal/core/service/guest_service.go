package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// GuestService manages per-user RSVP guest lists.
type GuestService struct {
	guests ports.GuestRepository
	logger zerolog.Logger
}

func NewGuestService(guests ports.GuestRepository, logger zerolog.Logger) *GuestService {
	return &GuestService{guests: guests, logger: logger}
}

func (s *GuestService) List(ctx context.Context, userID string) ([]domain.Guest, error) {
	return s.guests.ListByUser(ctx, userID)
}

func (s *GuestService) Add(ctx context.Context, userID string, input ports.AddGuestInput) (*domain.Guest, error) {
	status := input.RSVPStatus
	if status == "" {
		status = domain.RSVPPending
	}

	return s.guests.Create(ctx, &domain.Guest{
		UserID:     userID,
		GuestName:  input.GuestName,
		Email:      input.Email,
		RSVPStatus: status,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *GuestService) Update(ctx context.Context, userID, guestID string, input ports.UpdateGuestInput) (*domain.Guest, error) {
	guest, err := s.ownGuest(ctx, userID, guestID)
	if err != nil {
		return nil, err
	}

	if input.GuestName != "" {
		guest.GuestName = input.GuestName
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}
	if input.RSVPStatus != "" {
		guest.RSVPStatus = input.RSVPStatus
	}

	return s.guests.Update(ctx, guest)
}

func (s *GuestService) Remove(ctx context.Context, userID, guestID string) error {
	if _, err := s.ownGuest(ctx, userID, guestID); err != nil {
		return err
	}
	return s.guests.Delete(ctx, guestID)
}

func (s *GuestService) ownGuest(ctx context.Context, userID, guestID string) (*domain.Guest, error) {
	guest, err := s.guests.FindByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest.UserID != userID {
		return nil, domain.ErrGuestNotFound
	}
	return guest, nil
}
