//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pos-core/internal/domain/cart"
	"pos-core/internal/domain/promotion"
	"pos-core/internal/infra"
	"pos-core/internal/infra/cartstore"
	"pos-core/internal/pkg/clock"
	"pos-core/internal/usecase/commands"
	"pos-core/tests/common/builder"
	commandsmock "pos-core/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

type CartUseCaseTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockCtrl      *gomock.Controller
	store         *cartstore.MemoryStore
	productRepo   *commandsmock.MockProductRepository
	promotionRepo *commandsmock.MockPromotionRepository
	voucherRepo   *commandsmock.MockVoucherRepository
	clock         *clock.MockClock
	useCase       commands.CartCommands
	operatorID    uuid.UUID
}

func (s *CartUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = cartstore.NewMemoryStore()
	s.productRepo = commandsmock.NewMockProductRepository(s.mockCtrl)
	s.promotionRepo = commandsmock.NewMockPromotionRepository(s.mockCtrl)
	s.voucherRepo = commandsmock.NewMockVoucherRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(testNow)
	s.useCase = commands.NewCartUseCase(s.store, s.productRepo, s.promotionRepo, s.voucherRepo, s.clock)
	s.operatorID = uuid.New()
}

func (s *CartUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CartUseCaseTestSuite))
}

func (s *CartUseCaseTestSuite) productSnapshot(basePrice int64, stock int32) *commands.ProductSnapshot {
	return &commands.ProductSnapshot{
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		Name:      "Oxford Shirt",
		BasePrice: basePrice,
		Stock:     stock,
		ColorID:   uuid.New(),
		SizeID:    uuid.New(),
	}
}

// freshOperator isolates a subtest from session state left by earlier ones.
func (s *CartUseCaseTestSuite) freshOperator() {
	s.operatorID = uuid.New()
}

// seedCart puts priced items into a fresh operator's active cart without
// going through the catalog.
func (s *CartUseCaseTestSuite) seedCart(items ...cart.Item) *cart.Session {
	s.freshOperator()
	session, err := s.store.Load(s.ctx, s.operatorID)
	s.Require().NoError(err)
	for _, item := range items {
		s.Require().NoError(session.ActiveCart().AddItem(item))
	}
	s.Require().NoError(s.store.Save(s.ctx, session))
	return session
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartUseCaseTestSuite) TestAddItem() {
	s.Run("success: adds a priced line to the active cart", func() {
		s.freshOperator()
		product := s.productSnapshot(150000, 5)
		s.productRepo.EXPECT().FindVariant(gomock.Any(), product.ProductID, product.VariantID).
			Return(product, nil).Times(1)
		s.promotionRepo.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(1)

		result, err := s.useCase.AddItem(s.ctx, s.operatorID, product.ProductID, product.VariantID)

		s.Require().NoError(err)
		s.False(result.VoucherRevoked)
		s.Require().Len(result.Session.ActiveCart.Items, 1)
		s.Equal(int64(150000), result.Session.ActiveCart.Items[0].UnitPrice)
		s.Equal(int64(150000), result.Session.ActiveCart.Subtotal)
	})

	s.Run("success: promotion lookup failure degrades to the base price", func() {
		s.freshOperator()
		product := s.productSnapshot(150000, 5)
		s.productRepo.EXPECT().FindVariant(gomock.Any(), product.ProductID, product.VariantID).
			Return(product, nil).Times(1)
		s.promotionRepo.EXPECT().ListActive(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		result, err := s.useCase.AddItem(s.ctx, s.operatorID, product.ProductID, product.VariantID)

		s.Require().NoError(err)
		s.Equal(int64(150000), result.Session.ActiveCart.Items[0].UnitPrice)
	})

	s.Run("success: active promotion discounts the line", func() {
		s.freshOperator()
		product := s.productSnapshot(100000, 5)
		promo, err := builder.NewPromotionBuilder().
			WithPercent(20).
			WithProducts(product.ProductID).
			BuildDomain()
		s.Require().NoError(err)

		s.productRepo.EXPECT().FindVariant(gomock.Any(), product.ProductID, product.VariantID).
			Return(product, nil).Times(1)
		s.promotionRepo.EXPECT().ListActive(gomock.Any()).
			Return([]*promotion.Promotion{promo}, nil).Times(1)

		result, err := s.useCase.AddItem(s.ctx, s.operatorID, product.ProductID, product.VariantID)

		s.Require().NoError(err)
		item := result.Session.ActiveCart.Items[0]
		s.Equal(int64(80000), item.UnitPrice)
		s.Equal(int64(100000), item.OriginalPrice)
		s.True(item.HasDiscount)
	})

	s.Run("error: unknown variant", func() {
		productID, variantID := uuid.New(), uuid.New()
		s.productRepo.EXPECT().FindVariant(gomock.Any(), productID, variantID).
			Return(nil, infra.WrapRepoErr("variant not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.AddItem(s.ctx, s.operatorID, productID, variantID)

		s.Require().ErrorIs(err, commands.ErrProductNotFound)
	})

	s.Run("error: stock exceeded leaves the cart unchanged", func() {
		s.freshOperator()
		product := s.productSnapshot(150000, 1)
		s.productRepo.EXPECT().FindVariant(gomock.Any(), product.ProductID, product.VariantID).
			Return(product, nil).Times(2)
		s.promotionRepo.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(2)

		_, err := s.useCase.AddItem(s.ctx, s.operatorID, product.ProductID, product.VariantID)
		s.Require().NoError(err)

		_, err = s.useCase.AddItem(s.ctx, s.operatorID, product.ProductID, product.VariantID)
		s.Require().ErrorIs(err, cart.ErrStockExceeded)
	})
}

// ================================================================================
// TestVoucherLifecycle
// ================================================================================

func (s *CartUseCaseTestSuite) TestApplyVoucher() {
	s.Run("success: applies the discount against the subtotal", func() {
		s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		snapshot := builder.NewVoucherBuilder().BuildSnapshot()
		s.voucherRepo.EXPECT().FindActiveByCode(gomock.Any(), "SALE10").
			Return(&snapshot, nil).Times(1)

		view, err := s.useCase.ApplyVoucher(s.ctx, s.operatorID, "SALE10")

		s.Require().NoError(err)
		s.Equal(int64(30000), view.ActiveCart.Discount)
		s.Equal(int64(270000), view.ActiveCart.Total)
		s.Require().NotNil(view.ActiveCart.VoucherCode)
		s.Equal("SALE10", *view.ActiveCart.VoucherCode)
	})

	s.Run("error: unknown code", func() {
		s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		s.voucherRepo.EXPECT().FindActiveByCode(gomock.Any(), "NOPE123").
			Return(nil, infra.WrapRepoErr("voucher not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.ApplyVoucher(s.ctx, s.operatorID, "NOPE123")

		s.Require().ErrorIs(err, commands.ErrVoucherNotFound)
	})

	s.Run("error: malformed code never reaches the repository", func() {
		_, err := s.useCase.ApplyVoucher(s.ctx, s.operatorID, "no")

		s.Require().ErrorIs(err, commands.ErrVoucherNotFound)
	})

	s.Run("error: rejections map to their sentinel", func() {
		cases := []struct {
			name   string
			mutate func(*builder.VoucherBuilder)
			errIs  error
		}{
			{
				name:   "below minimum",
				mutate: func(b *builder.VoucherBuilder) { b.WithMinOrderValue(500000) },
				errIs:  commands.ErrVoucherBelowMinimum,
			},
			{
				name:   "exhausted",
				mutate: func(b *builder.VoucherBuilder) { b.WithUsage(10, 10) },
				errIs:  commands.ErrVoucherExhausted,
			},
			{
				name:   "expired",
				mutate: func(b *builder.VoucherBuilder) { b.WithEndDate(testNow.Add(-time.Hour)) },
				errIs:  commands.ErrVoucherExpired,
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
				snapshot := builder.NewVoucherBuilder().With(tc.mutate).BuildSnapshot()
				s.voucherRepo.EXPECT().FindActiveByCode(gomock.Any(), "SALE10").
					Return(&snapshot, nil).Times(1)

				_, err := s.useCase.ApplyVoucher(s.ctx, s.operatorID, "SALE10")

				s.Require().ErrorIs(err, tc.errIs)
			})
		}
	})
}

func (s *CartUseCaseTestSuite) TestRemoveVoucher() {
	s.Run("success: clears voucher and coupon input", func() {
		session := s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		session.ActiveCart().ApplyVoucher(builder.NewVoucherBuilder().BuildSnapshot(), 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))

		view, err := s.useCase.RemoveVoucher(s.ctx, s.operatorID)

		s.Require().NoError(err)
		s.Nil(view.ActiveCart.VoucherCode)
		s.Equal(int64(0), view.ActiveCart.Discount)
		s.Empty(view.ActiveCart.CouponCode)
	})

	s.Run("error: nothing applied", func() {
		s.freshOperator()
		_, err := s.useCase.RemoveVoucher(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, commands.ErrNoVoucherApplied)
	})
}

// ================================================================================
// TestVoucherRevalidation
// ================================================================================

func (s *CartUseCaseTestSuite) TestVoucherRevalidation() {
	s.Run("dropping below the minimum revokes silently", func() {
		first := builder.NewCartItemBuilder().WithUnitPrice(150000).Build()
		second := builder.NewCartItemBuilder().WithName("Linen Trousers").WithUnitPrice(150000).Build()
		session := s.seedCart(first, second)
		session.ActiveCart().ApplyVoucher(builder.NewVoucherBuilder().WithMinOrderValue(200000).BuildSnapshot(), 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))

		result, err := s.useCase.RemoveItem(s.ctx, s.operatorID, second.ID)

		s.Require().NoError(err)
		s.True(result.VoucherRevoked)
		s.Nil(result.Session.ActiveCart.VoucherCode)
		s.Equal(int64(0), result.Session.ActiveCart.Discount)
	})

	s.Run("an emptied cart always loses its voucher", func() {
		item := builder.NewCartItemBuilder().WithUnitPrice(300000).Build()
		session := s.seedCart(item)
		// No minimum at all; emptiness alone must revoke.
		session.ActiveCart().ApplyVoucher(builder.NewVoucherBuilder().WithMinOrderValue(0).BuildSnapshot(), 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))

		result, err := s.useCase.RemoveItem(s.ctx, s.operatorID, item.ID)

		s.Require().NoError(err)
		s.True(result.VoucherRevoked)
		s.Nil(result.Session.ActiveCart.VoucherCode)
	})

	s.Run("a still-eligible voucher is recomputed, not revoked", func() {
		item := builder.NewCartItemBuilder().WithUnitPrice(200000).WithStock(5).Build()
		session := s.seedCart(item)
		session.ActiveCart().ApplyVoucher(builder.NewVoucherBuilder().BuildSnapshot(), 20000)
		s.Require().NoError(s.store.Save(s.ctx, session))

		result, err := s.useCase.UpdateQuantity(s.ctx, s.operatorID, item.ID, 1)

		s.Require().NoError(err)
		s.False(result.VoucherRevoked)
		// 10% of the new 400000 subtotal.
		s.Equal(int64(40000), result.Session.ActiveCart.Discount)
	})
}

// ================================================================================
// TestMultiCart
// ================================================================================

func (s *CartUseCaseTestSuite) TestMultiCart() {
	s.Run("create activates and the limit holds across calls", func() {
		s.freshOperator()
		for i := 0; i < cart.MaxPendingCarts; i++ {
			view, err := s.useCase.CreateCart(s.ctx, s.operatorID)
			s.Require().NoError(err)
			s.Len(view.Carts, i+1)
		}

		_, err := s.useCase.CreateCart(s.ctx, s.operatorID)
		s.Require().ErrorIs(err, cart.ErrCartLimitReached)
	})

	s.Run("two-step deletion through the command layer", func() {
		s.freshOperator()
		view, err := s.useCase.CreateCart(s.ctx, s.operatorID)
		s.Require().NoError(err)
		cartID := view.Carts[len(view.Carts)-1].ID

		_, err = s.useCase.ConfirmCartDeletion(s.ctx, s.operatorID, cartID)
		s.Require().ErrorIs(err, cart.ErrDeletionNotRequested)

		_, err = s.useCase.RequestCartDeletion(s.ctx, s.operatorID, cartID)
		s.Require().NoError(err)

		deleted, err := s.useCase.ConfirmCartDeletion(s.ctx, s.operatorID, cartID)
		s.Require().NoError(err)
		s.Nil(deleted.ActiveCartID)
		s.True(deleted.ActiveCart.IsMain)
	})
}
