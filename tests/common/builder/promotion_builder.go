//go:build unit || e2e

package builder

import (
	"time"

	"pos-core/internal/domain/promotion"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID         uuid.UUID
	Name       string
	Percent    *float64
	Amount     *int64
	StartsAt   time.Time
	EndsAt     time.Time
	ProductIDs []uuid.UUID
}

func NewPromotionBuilder() *PromotionBuilder {
	percent := 20.0
	return &PromotionBuilder{
		ID:       uuid.New(),
		Name:     "Summer Sale",
		Percent:  &percent,
		StartsAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithPercent(percent float64) *PromotionBuilder {
	b.Percent = &percent
	b.Amount = nil
	return b
}

func (b *PromotionBuilder) WithFixedAmount(amount int64) *PromotionBuilder {
	b.Amount = &amount
	b.Percent = nil
	return b
}

func (b *PromotionBuilder) WithWindow(startsAt, endsAt time.Time) *PromotionBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *PromotionBuilder) WithProducts(productIDs ...uuid.UUID) *PromotionBuilder {
	b.ProductIDs = productIDs
	return b
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	var (
		discount promotion.Discount
		err      error
	)
	if b.Percent != nil {
		discount, err = promotion.NewPercentageDiscount(*b.Percent)
	} else {
		var amount int64
		if b.Amount != nil {
			amount = *b.Amount
		}
		discount, err = promotion.NewFixedDiscount(amount)
	}
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(b.ID, b.Name, discount, b.StartsAt, b.EndsAt, b.ProductIDs), nil
}
