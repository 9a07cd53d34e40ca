package cart

import (
	"github.com/google/uuid"
)

// Item is one priced, stock-aware line in a pending cart. It is a plain data
// shape; invariants are enforced by PendingCart mutations.
type Item struct {
	ID              string    `json:"id"`
	ProductID       uuid.UUID `json:"productId"`
	VariantID       uuid.UUID `json:"variantId"`
	Name            string    `json:"name"`
	Quantity        int32     `json:"quantity"`
	UnitPrice       int64     `json:"unitPrice"`
	OriginalPrice   int64     `json:"originalPrice,omitempty"`
	DiscountPercent float64   `json:"discountPercent,omitempty"`
	HasDiscount     bool      `json:"hasDiscount"`
	// Stock is a snapshot taken at selection time; the catalog service owns
	// the authoritative count and staleness is accepted.
	Stock   int32     `json:"stock"`
	ColorID uuid.UUID `json:"colorId"`
	SizeID  uuid.UUID `json:"sizeId"`
	// PriceWarning marks a line whose variant price could not be resolved.
	PriceWarning bool `json:"priceWarning,omitempty"`
}

// ItemID builds the composite line key, unique within a cart.
func ItemID(productID, variantID uuid.UUID) string {
	return productID.String() + ":" + variantID.String()
}

func (i Item) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
