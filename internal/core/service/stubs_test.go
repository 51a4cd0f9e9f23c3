package service

import (
	"context"
	"fmt"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// Map-backed stand-ins for the Mongo repositories. IDs are assigned
// sequentially so tests can predict them.

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type stubVendorRepo struct {
	seq     int
	vendors map[string]*domain.Vendor
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{vendors: make(map[string]*domain.Vendor)}
}

func cloneVendor(v *domain.Vendor) *domain.Vendor {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

func (r *stubVendorRepo) Create(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	r.seq++
	copy := cloneVendor(vendor)
	copy.ID = fmt.Sprintf("vendor-%d", r.seq)
	r.vendors[copy.ID] = cloneVendor(copy)
	return cloneVendor(copy), nil
}

func (r *stubVendorRepo) FindByID(_ context.Context, id string) (*domain.Vendor, error) {
	if v, ok := r.vendors[id]; ok {
		return cloneVendor(v), nil
	}
	return nil, domain.ErrVendorNotFound
}

func (r *stubVendorRepo) FindByUserID(_ context.Context, userID string) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.UserID == userID {
			return cloneVendor(v), nil
		}
	}
	return nil, domain.ErrVendorNotFound
}

func (r *stubVendorRepo) Update(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	if _, ok := r.vendors[vendor.ID]; !ok {
		return nil, domain.ErrVendorNotFound
	}
	r.vendors[vendor.ID] = cloneVendor(vendor)
	return cloneVendor(vendor), nil
}

func (r *stubVendorRepo) List(_ context.Context) ([]domain.Vendor, error) {
	out := make([]domain.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVendorRepo) ListByStatus(_ context.Context, status domain.MembershipStatus) ([]domain.Vendor, error) {
	var out []domain.Vendor
	for _, v := range r.vendors {
		if v.MembershipStatus == status {
			out = append(out, *v)
		}
	}
	return out, nil
}

type stubItemRepo struct {
	seq   int
	items map[string]*domain.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]*domain.Item)}
}

func cloneItem(i *domain.Item) *domain.Item {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.seq++
	copy := cloneItem(item)
	copy.ID = fmt.Sprintf("item-%d", r.seq)
	r.items[copy.ID] = cloneItem(copy)
	return cloneItem(copy), nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id string) (*domain.Item, error) {
	if i, ok := r.items[id]; ok {
		return cloneItem(i), nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	r.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (r *stubItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) ListByVendor(_ context.Context, vendorID string) ([]domain.Item, error) {
	var out []domain.Item
	for _, i := range r.items {
		if i.VendorID == vendorID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *stubItemRepo) ListAll(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubItemRepo) ListApproved(_ context.Context, vendorIDs []string, category string) ([]domain.Item, error) {
	allowed := make(map[string]struct{}, len(vendorIDs))
	for _, id := range vendorIDs {
		allowed[id] = struct{}{}
	}
	var out []domain.Item
	for _, i := range r.items {
		if i.Status != domain.ItemApproved {
			continue
		}
		if _, ok := allowed[i.VendorID]; !ok {
			continue
		}
		if category != "" && i.Category != category {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

type stubOrderRepo struct {
	seq    int
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]domain.OrderItem(nil), o.Items...)
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.seq++
	copy := cloneOrder(order)
	copy.ID = fmt.Sprintf("order-%d", r.seq)
	r.orders[copy.ID] = cloneOrder(copy)
	return cloneOrder(copy), nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.IdempotencyKey == key {
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if _, ok := r.orders[order.ID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	r.orders[order.ID] = cloneOrder(order)
	return cloneOrder(order), nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *cloneOrder(o))
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByVendor(_ context.Context, vendorID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.VendorID == vendorID {
			out = append(out, *cloneOrder(o))
		}
	}
	return out, nil
}

type stubCartRepo struct {
	seq   int
	lines map[string]*domain.CartItem
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{lines: make(map[string]*domain.CartItem)}
}

func cloneCartItem(c *domain.CartItem) *domain.CartItem {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCartRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubCartRepo) FindByID(_ context.Context, id string) (*domain.CartItem, error) {
	if l, ok := r.lines[id]; ok {
		return cloneCartItem(l), nil
	}
	return nil, domain.ErrCartItemNotFound
}

func (r *stubCartRepo) FindByUserAndItem(_ context.Context, userID, itemID string) (*domain.CartItem, error) {
	for _, l := range r.lines {
		if l.UserID == userID && l.ItemID == itemID {
			return cloneCartItem(l), nil
		}
	}
	return nil, domain.ErrCartItemNotFound
}

func (r *stubCartRepo) Create(_ context.Context, line *domain.CartItem) (*domain.CartItem, error) {
	r.seq++
	copy := cloneCartItem(line)
	copy.ID = fmt.Sprintf("cart-%d", r.seq)
	r.lines[copy.ID] = cloneCartItem(copy)
	return cloneCartItem(copy), nil
}

func (r *stubCartRepo) UpdateQuantity(_ context.Context, id string, quantity int) (*domain.CartItem, error) {
	l, ok := r.lines[id]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	l.Quantity = quantity
	return cloneCartItem(l), nil
}

func (r *stubCartRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.lines[id]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(r.lines, id)
	return nil
}

func (r *stubCartRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, l := range r.lines {
		if l.UserID == userID {
			delete(r.lines, id)
		}
	}
	return nil
}

type stubGuestRepo struct {
	seq    int
	guests map[string]*domain.Guest
}

func newStubGuestRepo() *stubGuestRepo {
	return &stubGuestRepo{guests: make(map[string]*domain.Guest)}
}

func cloneGuest(g *domain.Guest) *domain.Guest {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

func (r *stubGuestRepo) ListByUser(_ context.Context, userID string) ([]domain.Guest, error) {
	var out []domain.Guest
	for _, g := range r.guests {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubGuestRepo) FindByID(_ context.Context, id string) (*domain.Guest, error) {
	if g, ok := r.guests[id]; ok {
		return cloneGuest(g), nil
	}
	return nil, domain.ErrGuestNotFound
}

func (r *stubGuestRepo) Create(_ context.Context, guest *domain.Guest) (*domain.Guest, error) {
	r.seq++
	copy := cloneGuest(guest)
	copy.ID = fmt.Sprintf("guest-%d", r.seq)
	r.guests[copy.ID] = cloneGuest(copy)
	return cloneGuest(copy), nil
}

func (r *stubGuestRepo) Update(_ context.Context, guest *domain.Guest) (*domain.Guest, error) {
	if _, ok := r.guests[guest.ID]; !ok {
		return nil, domain.ErrGuestNotFound
	}
	r.guests[guest.ID] = cloneGuest(guest)
	return cloneGuest(guest), nil
}

func (r *stubGuestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.guests[id]; !ok {
		return domain.ErrGuestNotFound
	}
	delete(r.guests, id)
	return nil
}

// stubCatalogCache records cache traffic for assertions.
type stubCatalogCache struct {
	data        map[string][]domain.Item
	invalidated int
}

func newStubCatalogCache() *stubCatalogCache {
	return &stubCatalogCache{data: make(map[string][]domain.Item)}
}

func (c *stubCatalogCache) Get(_ context.Context, category string) ([]domain.Item, bool, error) {
	items, ok := c.data[category]
	return items, ok, nil
}

func (c *stubCatalogCache) Set(_ context.Context, category string, items []domain.Item) error {
	c.data[category] = items
	return nil
}

func (c *stubCatalogCache) Invalidate(_ context.Context) error {
	c.data = make(map[string][]domain.Item)
	c.invalidated++
	return nil
}
