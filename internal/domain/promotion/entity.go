package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

// Discount carries either a percentage or a fixed amount off.
type Discount struct {
	amountOff  *int64
	percentOff *float64
}

func NewFixedDiscount(amountOff int64) (Discount, error) {
	if amountOff < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOff: &amountOff}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountOff() int64 {
	if d.amountOff != nil {
		return *d.amountOff
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// Apply returns the discounted price, floored at zero.
func (d Discount) Apply(price int64) int64 {
	var result int64
	if d.IsPercentage() {
		result = int64(float64(price) * (100.0 - d.PercentOff()) / 100.0)
	} else {
		result = price - d.AmountOff()
	}
	if result < 0 {
		return 0
	}
	return result
}

type Promotion struct {
	id         uuid.UUID
	name       string
	discount   Discount
	startsAt   time.Time
	endsAt     time.Time
	productIDs map[uuid.UUID]struct{}
}

func NewPromotion(
	id uuid.UUID,
	name string,
	discount Discount,
	startsAt, endsAt time.Time,
	productIDs []uuid.UUID,
) *Promotion {
	ids := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, pid := range productIDs {
		ids[pid] = struct{}{}
	}
	return &Promotion{
		id:         id,
		name:       name,
		discount:   discount,
		startsAt:   startsAt,
		endsAt:     endsAt,
		productIDs: ids,
	}
}

func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.startsAt) && !t.After(p.endsAt)
}

func (p *Promotion) AppliesTo(productID uuid.UUID) bool {
	_, ok := p.productIDs[productID]
	return ok
}

func (p *Promotion) ID() uuid.UUID      { return p.id }
func (p *Promotion) Name() string       { return p.name }
func (p *Promotion) Discount() Discount { return p.discount }
func (p *Promotion) StartsAt() time.Time { return p.startsAt }
func (p *Promotion) EndsAt() time.Time  { return p.endsAt }
