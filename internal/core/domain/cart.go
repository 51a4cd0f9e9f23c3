package domain

// CartItem is a pending selection in a user's cart. Adding an item already
// in the cart merges into the existing line by summing quantities.
type CartItem struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}
