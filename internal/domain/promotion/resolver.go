package promotion

import (
	"time"

	"github.com/google/uuid"
)

// Listing is the catalog view of a variant at selection time. When the
// catalog already resolved a discount upstream, the precomputed fields are
// set and must be reused verbatim to avoid double-discounting.
type Listing struct {
	ProductID       uuid.UUID
	BasePrice       int64
	HasDiscount     bool
	DiscountedPrice int64
	OriginalPrice   int64
	DiscountPercent float64
}

// PriceQuote is the effective unit price for one cart line.
type PriceQuote struct {
	UnitPrice       int64
	OriginalPrice   int64
	DiscountPercent float64
	HasDiscount     bool
	// PriceWarning is set when the variant price was missing or invalid and
	// the quote fell back to zero. Surfaced to the operator, never an error.
	PriceWarning bool
}

// Resolve computes the effective unit price for a listing against the active
// promotion set. The first active matching promotion wins; promotions are
// never stacked on one line.
func Resolve(listing Listing, promotions []*Promotion, now time.Time) PriceQuote {
	if listing.HasDiscount {
		return PriceQuote{
			UnitPrice:       listing.DiscountedPrice,
			OriginalPrice:   listing.OriginalPrice,
			DiscountPercent: listing.DiscountPercent,
			HasDiscount:     true,
		}
	}

	if listing.BasePrice <= 0 {
		return PriceQuote{PriceWarning: true}
	}

	for _, promo := range promotions {
		if !promo.ActiveAt(now) || !promo.AppliesTo(listing.ProductID) {
			continue
		}

		discounted := promo.Discount().Apply(listing.BasePrice)
		percent := promo.Discount().PercentOff()
		if !promo.Discount().IsPercentage() && listing.BasePrice > 0 {
			percent = float64(listing.BasePrice-discounted) * 100.0 / float64(listing.BasePrice)
		}
		return PriceQuote{
			UnitPrice:       discounted,
			OriginalPrice:   listing.BasePrice,
			DiscountPercent: percent,
			HasDiscount:     true,
		}
	}

	return PriceQuote{UnitPrice: listing.BasePrice}
}
