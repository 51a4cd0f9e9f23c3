package domain

import "time"

// ItemStatus is the moderation state of a product listing.
type ItemStatus string

const (
	ItemPending  ItemStatus = "pending"
	ItemApproved ItemStatus = "approved"
	ItemRejected ItemStatus = "rejected"
)

// ValidItemStatus reports whether s is a known listing status.
func ValidItemStatus(s ItemStatus) bool {
	return s == ItemPending || s == ItemApproved || s == ItemRejected
}

// Item is a product listing owned by a vendor. New listings start as
// pending and only become visible to buyers once an admin approves them.
type Item struct {
	ID          string     `json:"id"`
	VendorID    string     `json:"vendor_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Category    string     `json:"category,omitempty"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
