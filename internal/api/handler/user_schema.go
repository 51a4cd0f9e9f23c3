package handler

import "github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"

// --- Cart ---

type addCartItemRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// cartLineResponse is a cart entry joined with its current listing. Item is
// null when the listing has been removed since it was added.
type cartLineResponse struct {
	ID       string       `json:"id"`
	ItemID   string       `json:"item_id"`
	Quantity int          `json:"quantity"`
	Item     *domain.Item `json:"item"`
}

// --- Orders ---

type orderLineRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	VendorID string             `json:"vendor_id" validate:"required"`
	Items    []orderLineRequest `json:"items"     validate:"required,min=1,dive"`
}

// --- Guests ---

type addGuestRequest struct {
	GuestName  string `json:"guest_name"  validate:"required"`
	Email      string `json:"email"       validate:"omitempty,email"`
	RSVPStatus string `json:"rsvp_status" validate:"omitempty,oneof=Pending Confirmed Declined"`
}

type updateGuestRequest struct {
	GuestName  string  `json:"guest_name"`
	Email      *string `json:"email"`
	RSVPStatus string  `json:"rsvp_status" validate:"omitempty,oneof=Pending Confirmed Declined"`
}
