package domain

import "time"

// RSVPStatus is a guest's reply on an event guest list.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "Pending"
	RSVPConfirmed RSVPStatus = "Confirmed"
	RSVPDeclined  RSVPStatus = "Declined"
)

// ValidRSVPStatus reports whether s is a known RSVP status.
func ValidRSVPStatus(s RSVPStatus) bool {
	return s == RSVPPending || s == RSVPConfirmed || s == RSVPDeclined
}

// Guest is an entry on a user's RSVP guest list.
type Guest struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	GuestName  string     `json:"guest_name"`
	Email      string     `json:"email,omitempty"`
	RSVPStatus RSVPStatus `json:"rsvp_status"`
	CreatedAt  time.Time  `json:"created_at"`
}
