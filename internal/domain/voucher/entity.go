package voucher

import (
	"time"

	"github.com/google/uuid"
)

type Voucher struct {
	id            uuid.UUID
	code          Code
	rule          DiscountRule
	minOrderValue int64
	quantity      int32
	usedCount     int32
	endDate       time.Time
}

func NewVoucher(
	id uuid.UUID,
	code string,
	rule DiscountRule,
	minOrderValue int64,
	quantity, usedCount int32,
	endDate time.Time,
) (*Voucher, error) {
	voucherCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	return &Voucher{
		id:            id,
		code:          voucherCode,
		rule:          rule,
		minOrderValue: minOrderValue,
		quantity:      quantity,
		usedCount:     usedCount,
		endDate:       endDate,
	}, nil
}

// Eligible runs the checks in the documented order and returns the first
// failure: minimum order value, usage cap, expiry. A nil result means the
// voucher may be applied against the given subtotal.
func (v *Voucher) Eligible(now time.Time, subtotal int64) *Rejection {
	if subtotal < v.minOrderValue {
		return &Rejection{Reason: ReasonBelowMinimum}
	}
	if v.usedCount >= v.quantity {
		return &Rejection{Reason: ReasonExhausted}
	}
	if now.After(v.endDate) {
		return &Rejection{Reason: ReasonExpired}
	}
	return nil
}

// DiscountFor computes the discount amount for a subtotal. The result never
// exceeds the subtotal itself.
func (v *Voucher) DiscountFor(subtotal int64) int64 {
	amount := v.rule.AmountFor(subtotal)
	if amount > subtotal {
		amount = subtotal
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

func (v *Voucher) ID() uuid.UUID       { return v.id }
func (v *Voucher) Code() Code          { return v.code }
func (v *Voucher) Rule() DiscountRule  { return v.rule }
func (v *Voucher) MinOrderValue() int64 { return v.minOrderValue }
func (v *Voucher) Quantity() int32     { return v.quantity }
func (v *Voucher) UsedCount() int32    { return v.usedCount }
func (v *Voucher) EndDate() time.Time  { return v.endDate }
