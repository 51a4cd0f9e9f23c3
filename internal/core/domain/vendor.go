package domain

import "time"

// MembershipStatus is the moderation state of a vendor account.
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
)

// ValidMembershipStatus reports whether s is a known membership status.
func ValidMembershipStatus(s MembershipStatus) bool {
	return s == MembershipPending || s == MembershipActive || s == MembershipInactive
}

// Categories a vendor (and its items) can belong to.
const (
	CategoryCatering   = "Catering"
	CategoryFlorist    = "Florist"
	CategoryDecoration = "Decoration"
	CategoryLighting   = "Lighting"
)

// ValidCategory reports whether c is a known listing category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCatering, CategoryFlorist, CategoryDecoration, CategoryLighting:
		return true
	}
	return false
}

// Vendor is the seller profile attached to a user with the vendor role.
type Vendor struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	CompanyName      string           `json:"company_name"`
	Category         string           `json:"category,omitempty"`
	MembershipStatus MembershipStatus `json:"membership_status"`
	CreatedAt        time.Time        `json:"created_at"`
}
