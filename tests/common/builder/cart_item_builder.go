//go:build unit || e2e

package builder

import (
	"pos-core/internal/domain/cart"

	"github.com/google/uuid"
)

type CartItemBuilder struct {
	ProductID       uuid.UUID
	VariantID       uuid.UUID
	Name            string
	Quantity        int32
	UnitPrice       int64
	OriginalPrice   int64
	DiscountPercent float64
	HasDiscount     bool
	Stock           int32
	ColorID         uuid.UUID
	SizeID          uuid.UUID
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		Name:      "Oxford Shirt",
		Quantity:  1,
		UnitPrice: 150000,
		Stock:     3,
		ColorID:   uuid.New(),
		SizeID:    uuid.New(),
	}
}

func (b *CartItemBuilder) With(mutate func(*CartItemBuilder)) *CartItemBuilder {
	mutate(b)
	return b
}

func (b *CartItemBuilder) WithName(name string) *CartItemBuilder {
	b.Name = name
	return b
}

func (b *CartItemBuilder) WithUnitPrice(unitPrice int64) *CartItemBuilder {
	b.UnitPrice = unitPrice
	return b
}

func (b *CartItemBuilder) WithStock(stock int32) *CartItemBuilder {
	b.Stock = stock
	return b
}

func (b *CartItemBuilder) WithQuantity(quantity int32) *CartItemBuilder {
	b.Quantity = quantity
	return b
}

func (b *CartItemBuilder) WithDiscount(originalPrice int64, percent float64) *CartItemBuilder {
	b.OriginalPrice = originalPrice
	b.DiscountPercent = percent
	b.HasDiscount = true
	return b
}

func (b *CartItemBuilder) Build() cart.Item {
	return cart.Item{
		ID:              cart.ItemID(b.ProductID, b.VariantID),
		ProductID:       b.ProductID,
		VariantID:       b.VariantID,
		Name:            b.Name,
		Quantity:        b.Quantity,
		UnitPrice:       b.UnitPrice,
		OriginalPrice:   b.OriginalPrice,
		DiscountPercent: b.DiscountPercent,
		HasDiscount:     b.HasDiscount,
		Stock:           b.Stock,
		ColorID:         b.ColorID,
		SizeID:          b.SizeID,
	}
}
