package domain

import "time"

// OrderStatus is the fulfilment state of an order, driven by the vendor.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderPending || s == OrderConfirmed || s == OrderCompleted || s == OrderCancelled
}

// PaymentStatus is a plain field flipped by the client-facing pay endpoint.
// There is no settlement flow behind it.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// OrderItem is a line on an order. Price is the unit price snapshotted at
// order time, so later listing edits do not rewrite past orders.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a purchase placed by a user against a single vendor.
// TotalAmount is always computed server-side from the line items.
type Order struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	VendorID       string        `json:"vendor_id"`
	Items          []OrderItem   `json:"order_items"`
	TotalAmount    float64       `json:"total_amount"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	OrderStatus    OrderStatus   `json:"order_status"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
