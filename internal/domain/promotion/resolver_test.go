//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"pos-core/internal/domain/promotion"
	"pos-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestDiscount(t *testing.T) {
	t.Run("percentage applies proportionally", func(t *testing.T) {
		d, err := promotion.NewPercentageDiscount(20)
		require.NoError(t, err)

		assert.Equal(t, int64(80000), d.Apply(100000))
		assert.True(t, d.IsPercentage())
	})

	t.Run("fixed amount subtracts", func(t *testing.T) {
		d, err := promotion.NewFixedDiscount(30000)
		require.NoError(t, err)

		assert.Equal(t, int64(70000), d.Apply(100000))
		assert.False(t, d.IsPercentage())
	})

	t.Run("fixed amount floors at zero", func(t *testing.T) {
		d, err := promotion.NewFixedDiscount(150000)
		require.NoError(t, err)

		assert.Equal(t, int64(0), d.Apply(100000))
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := promotion.NewFixedDiscount(-1)
		require.ErrorIs(t, err, promotion.ErrInvalidDiscountAmount)
	})

	t.Run("percent out of range rejected", func(t *testing.T) {
		_, err := promotion.NewPercentageDiscount(101)
		require.ErrorIs(t, err, promotion.ErrInvalidDiscountPercent)
	})
}

func TestPromotionActivation(t *testing.T) {
	productID := uuid.New()
	promo, err := builder.NewPromotionBuilder().
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		WithProducts(productID).
		BuildDomain()
	require.NoError(t, err)

	assert.True(t, promo.ActiveAt(now))
	assert.False(t, promo.ActiveAt(now.Add(2*time.Hour)))
	assert.False(t, promo.ActiveAt(now.Add(-2*time.Hour)))
	assert.True(t, promo.AppliesTo(productID))
	assert.False(t, promo.AppliesTo(uuid.New()))
}

func TestResolve(t *testing.T) {
	productID := uuid.New()

	listing := func(basePrice int64) promotion.Listing {
		return promotion.Listing{ProductID: productID, BasePrice: basePrice}
	}

	t.Run("no promotions keeps base price", func(t *testing.T) {
		quote := promotion.Resolve(listing(100000), nil, now)

		assert.Equal(t, int64(100000), quote.UnitPrice)
		assert.False(t, quote.HasDiscount)
		assert.False(t, quote.PriceWarning)
	})

	t.Run("precomputed discount is reused verbatim", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().WithPercent(50).WithProducts(productID).BuildDomain()
		require.NoError(t, err)

		quote := promotion.Resolve(promotion.Listing{
			ProductID:       productID,
			BasePrice:       100000,
			HasDiscount:     true,
			DiscountedPrice: 85000,
			OriginalPrice:   100000,
			DiscountPercent: 15,
		}, []*promotion.Promotion{promo}, now)

		assert.Equal(t, int64(85000), quote.UnitPrice)
		assert.Equal(t, int64(100000), quote.OriginalPrice)
		assert.Equal(t, 15.0, quote.DiscountPercent)
		assert.True(t, quote.HasDiscount)
	})

	t.Run("missing base price yields warning", func(t *testing.T) {
		quote := promotion.Resolve(listing(0), nil, now)

		assert.True(t, quote.PriceWarning)
		assert.Equal(t, int64(0), quote.UnitPrice)
	})

	t.Run("first matching promotion wins without stacking", func(t *testing.T) {
		first, err := builder.NewPromotionBuilder().WithPercent(20).WithProducts(productID).BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewPromotionBuilder().WithPercent(50).WithProducts(productID).BuildDomain()
		require.NoError(t, err)

		quote := promotion.Resolve(listing(100000), []*promotion.Promotion{first, second}, now)

		assert.Equal(t, int64(80000), quote.UnitPrice)
		assert.Equal(t, 20.0, quote.DiscountPercent)
		assert.True(t, quote.HasDiscount)
	})

	t.Run("inactive promotion is skipped", func(t *testing.T) {
		expired, err := builder.NewPromotionBuilder().
			WithPercent(50).
			WithProducts(productID).
			WithWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		active, err := builder.NewPromotionBuilder().WithPercent(20).WithProducts(productID).BuildDomain()
		require.NoError(t, err)

		quote := promotion.Resolve(listing(100000), []*promotion.Promotion{expired, active}, now)

		assert.Equal(t, int64(80000), quote.UnitPrice)
	})

	t.Run("promotion for another product is skipped", func(t *testing.T) {
		other, err := builder.NewPromotionBuilder().WithPercent(50).WithProducts(uuid.New()).BuildDomain()
		require.NoError(t, err)

		quote := promotion.Resolve(listing(100000), []*promotion.Promotion{other}, now)

		assert.Equal(t, int64(100000), quote.UnitPrice)
		assert.False(t, quote.HasDiscount)
	})

	t.Run("fixed discount reports effective percent", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().WithFixedAmount(25000).WithProducts(productID).BuildDomain()
		require.NoError(t, err)

		quote := promotion.Resolve(listing(100000), []*promotion.Promotion{promo}, now)

		assert.Equal(t, int64(75000), quote.UnitPrice)
		assert.Equal(t, int64(100000), quote.OriginalPrice)
		assert.Equal(t, 25.0, quote.DiscountPercent)
		assert.True(t, quote.HasDiscount)
	})
}
