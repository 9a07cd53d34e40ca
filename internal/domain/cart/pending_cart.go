package cart

import (
	"pos-core/internal/domain/voucher"
	"pos-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStockExceeded   = errs.New("quantity exceeds available stock")
	ErrItemNotFound    = errs.New("cart item not found")
	ErrInvalidQuantity = errs.New("quantity must be positive")
)

// PendingCart is one of up to five independent in-progress sales. It
// exclusively owns its items; nothing is shared across carts.
type PendingCart struct {
	id              uuid.UUID
	name            string
	items           []Item
	appliedDiscount int64
	appliedVoucher  *voucher.Snapshot
	couponCode      string
}

func NewPendingCart(id uuid.UUID, name string) *PendingCart {
	return &PendingCart{
		id:    id,
		name:  name,
		items: []Item{},
	}
}

// AddItem merges by line id: an existing line gains one unit if stock
// allows, otherwise the quantity is left unchanged and ErrStockExceeded is
// returned. A new line starts at quantity 1.
func (c *PendingCart) AddItem(item Item) error {
	for i := range c.items {
		if c.items[i].ID != item.ID {
			continue
		}
		if c.items[i].Quantity+1 > c.items[i].Stock {
			return ErrStockExceeded
		}
		c.items[i].Quantity++
		return nil
	}

	if item.Stock < 1 {
		return ErrStockExceeded
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	return nil
}

// UpdateQuantity applies a delta to a line. A result of zero or less removes
// the line; a result above the stock snapshot is rejected without change.
// The boolean reports whether the line was removed.
func (c *PendingCart) UpdateQuantity(itemID string, delta int32) (bool, error) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		newQuantity := c.items[i].Quantity + delta
		if newQuantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true, nil
		}
		if newQuantity > c.items[i].Stock {
			return false, ErrStockExceeded
		}
		c.items[i].Quantity = newQuantity
		return false, nil
	}
	return false, ErrItemNotFound
}

func (c *PendingCart) RemoveItem(itemID string) error {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart and resets discount, voucher and coupon input.
func (c *PendingCart) Clear() {
	c.items = []Item{}
	c.appliedDiscount = 0
	c.appliedVoucher = nil
	c.couponCode = ""
}

func (c *PendingCart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

func (c *PendingCart) Total() int64 {
	total := c.Subtotal() - c.appliedDiscount
	if total < 0 {
		return 0
	}
	return total
}

func (c *PendingCart) IsEmpty() bool {
	return len(c.items) == 0
}

// ApplyVoucher stores a read-only voucher snapshot and its discount amount.
func (c *PendingCart) ApplyVoucher(snapshot voucher.Snapshot, discount int64) {
	c.appliedVoucher = &snapshot
	c.appliedDiscount = discount
	c.couponCode = snapshot.Code
}

// RevokeVoucher clears the applied voucher and discount, keeping items.
func (c *PendingCart) RevokeVoucher() {
	c.appliedVoucher = nil
	c.appliedDiscount = 0
}

func (c *PendingCart) SetCouponCode(code string) {
	c.couponCode = code
}

func (c *PendingCart) Item(itemID string) (Item, bool) {
	for _, item := range c.items {
		if item.ID == itemID {
			return item, true
		}
	}
	return Item{}, false
}

func (c *PendingCart) ID() uuid.UUID   { return c.id }
func (c *PendingCart) Name() string    { return c.name }
func (c *PendingCart) CouponCode() string { return c.couponCode }
func (c *PendingCart) AppliedDiscount() int64 { return c.appliedDiscount }

func (c *PendingCart) AppliedVoucher() *voucher.Snapshot {
	if c.appliedVoucher == nil {
		return nil
	}
	snapshot := *c.appliedVoucher
	return &snapshot
}

// Items returns a copy; callers cannot mutate cart state through it.
func (c *PendingCart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}
