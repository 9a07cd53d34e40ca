//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pos-core/internal/domain/cart"
	"pos-core/internal/infra/cartstore"
	"pos-core/internal/pkg/clock"
	"pos-core/internal/pkg/config"
	"pos-core/internal/usecase/commands"
	"pos-core/tests/common/builder"
	commandsmock "pos-core/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	store       *cartstore.MemoryStore
	orderRepo   *commandsmock.MockOrderRepository
	voucherRepo *commandsmock.MockVoucherRepository
	statsRepo   *commandsmock.MockStatsRepository
	clock       *clock.MockClock
	useCase     commands.CheckoutCommands
	operatorID  uuid.UUID
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = cartstore.NewMemoryStore()
	s.orderRepo = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.voucherRepo = commandsmock.NewMockVoucherRepository(s.mockCtrl)
	s.statsRepo = commandsmock.NewMockStatsRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(testNow)
	s.useCase = commands.NewCheckoutUseCase(
		s.store, s.orderRepo, s.voucherRepo, s.statsRepo,
		config.ShopConfig{Name: "Test Store", Address: "1 Test Street", Phone: "000"},
		s.clock,
	)
	s.operatorID = uuid.New()
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

// seedCart fills a fresh operator's active cart directly through the store.
func (s *CheckoutUseCaseTestSuite) seedCart(items ...cart.Item) *cart.Session {
	s.operatorID = uuid.New()
	session, err := s.store.Load(s.ctx, s.operatorID)
	s.Require().NoError(err)
	for _, item := range items {
		s.Require().NoError(session.ActiveCart().AddItem(item))
	}
	s.Require().NoError(s.store.Save(s.ctx, session))
	return session
}

func (s *CheckoutUseCaseTestSuite) beginCash(cashReceived int64) {
	_, err := s.useCase.Begin(s.ctx, s.operatorID, commands.BeginCheckoutInput{
		Method:       cart.PaymentCash,
		CashReceived: cashReceived,
	})
	s.Require().NoError(err)
}

// ================================================================================
// TestBegin
// ================================================================================

func (s *CheckoutUseCaseTestSuite) TestBegin() {
	s.Run("success: captures the payment intent", func() {
		s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())

		view, err := s.useCase.Begin(s.ctx, s.operatorID, commands.BeginCheckoutInput{
			Method:        cart.PaymentCash,
			CustomerName:  "Jordan",
			CustomerPhone: "0812345678",
			CashReceived:  350000,
		})

		s.Require().NoError(err)
		s.Equal(string(cart.StatusAwaitingConfirmation), view.Checkout.Status)
		s.Equal(string(cart.PaymentCash), view.Checkout.Method)
		s.Equal("Jordan", view.Checkout.CustomerName)
		s.Equal(int64(350000), view.Checkout.CashReceived)
		s.False(view.Checkout.TransferConfirmed)
	})

	s.Run("error: unknown payment method", func() {
		s.seedCart(builder.NewCartItemBuilder().Build())

		_, err := s.useCase.Begin(s.ctx, s.operatorID, commands.BeginCheckoutInput{Method: "CRYPTO"})

		s.Require().ErrorIs(err, commands.ErrInvalidPaymentMethod)
	})

	s.Run("error: empty cart", func() {
		s.seedCart()

		_, err := s.useCase.Begin(s.ctx, s.operatorID, commands.BeginCheckoutInput{Method: cart.PaymentCash})

		s.Require().ErrorIs(err, cart.ErrCartEmpty)
	})
}

// ================================================================================
// TestConfirmTransfer
// ================================================================================

func (s *CheckoutUseCaseTestSuite) TestConfirmTransfer() {
	s.Run("success: marks the transfer confirmed", func() {
		s.seedCart(builder.NewCartItemBuilder().Build())
		_, err := s.useCase.Begin(s.ctx, s.operatorID, commands.BeginCheckoutInput{Method: cart.PaymentBankTransfer})
		s.Require().NoError(err)

		view, err := s.useCase.ConfirmTransfer(s.ctx, s.operatorID)

		s.Require().NoError(err)
		s.True(view.Checkout.TransferConfirmed)
	})

	s.Run("error: checkout has not begun", func() {
		s.seedCart(builder.NewCartItemBuilder().Build())

		_, err := s.useCase.ConfirmTransfer(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, cart.ErrCheckoutNotStarted)
	})

	s.Run("error: not a bank transfer sale", func() {
		s.seedCart(builder.NewCartItemBuilder().Build())
		s.beginCash(500000)

		_, err := s.useCase.ConfirmTransfer(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, commands.ErrInvalidPaymentMethod)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *CheckoutUseCaseTestSuite) TestCancel() {
	s.Run("success: resets checkout and keeps the cart", func() {
		s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		s.beginCash(300000)

		view, err := s.useCase.Cancel(s.ctx, s.operatorID)

		s.Require().NoError(err)
		s.Equal(string(cart.StatusIdle), view.Checkout.Status)
		s.Len(view.ActiveCart.Items, 1)
	})

	s.Run("error: submission in flight", func() {
		session := s.seedCart(builder.NewCartItemBuilder().Build())
		s.Require().NoError(session.Checkout().Begin(session.ActiveCart()))
		s.Require().NoError(session.Checkout().MarkSubmitting())
		s.Require().NoError(s.store.Save(s.ctx, session))

		_, err := s.useCase.Cancel(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, cart.ErrCheckoutInFlight)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *CheckoutUseCaseTestSuite) TestSubmit() {
	s.Run("success: cash sale with voucher", func() {
		item := builder.NewCartItemBuilder().WithUnitPrice(150000).WithStock(5).WithQuantity(1).Build()
		session := s.seedCart(item)
		_, err := session.ActiveCart().UpdateQuantity(item.ID, 1)
		s.Require().NoError(err)
		snapshot := builder.NewVoucherBuilder().BuildSnapshot()
		session.ActiveCart().ApplyVoucher(snapshot, 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))
		s.beginCash(300000)

		orderID := uuid.New()
		var captured *commands.OrderDraft
		s.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, draft *commands.OrderDraft) (uuid.UUID, error) {
				captured = draft
				return orderID, nil
			}).Times(1)
		s.voucherRepo.EXPECT().IncrementUsage(gomock.Any(), snapshot.ID).Return(nil).Times(1)
		s.statsRepo.EXPECT().RecordSale(gomock.Any(), int64(270000), testNow).Return(nil).Times(1)

		result, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().NoError(err)
		s.Equal(orderID, result.OrderID)
		s.Empty(result.Warnings)

		s.Require().NotNil(captured)
		s.Equal(int64(300000), captured.Subtotal)
		s.Equal(int64(30000), captured.Discount)
		s.Equal(int64(270000), captured.Total)
		s.Equal("Walk-in Customer", captured.CustomerName)
		s.Equal("-", captured.CustomerPhone)
		s.Equal("PAID", captured.Status)
		s.True(strings.HasPrefix(captured.OrderNumber, "POS120000-"))

		s.Require().NotNil(result.Invoice)
		s.Equal("Test Store", result.Invoice.ShopName)
		s.Equal(int64(30000), result.Invoice.ChangeDue)

		// The completed sale empties the cart in place and resets checkout.
		s.Empty(result.Session.ActiveCart.Items)
		s.Nil(result.Session.ActiveCart.VoucherCode)
		s.Equal(string(cart.StatusIdle), result.Session.Checkout.Status)
	})

	s.Run("success: an expired voucher is revoked and gates see the full total", func() {
		session := s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		expired := builder.NewVoucherBuilder().WithEndDate(testNow.Add(-time.Hour)).BuildSnapshot()
		session.ActiveCart().ApplyVoucher(expired, 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))
		s.beginCash(300000)

		s.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
		s.statsRepo.EXPECT().RecordSale(gomock.Any(), int64(300000), testNow).Return(nil).Times(1)

		result, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().NoError(err)
		s.Contains(result.Warnings, commands.WarnVoucherRevoked)
		s.Equal(int64(0), result.Invoice.Discount)
	})

	s.Run("error: revocation can fail the cash gate", func() {
		session := s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		expired := builder.NewVoucherBuilder().WithEndDate(testNow.Add(-time.Hour)).BuildSnapshot()
		session.ActiveCart().ApplyVoucher(expired, 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))
		// Enough for the discounted total, not for the restored one.
		s.beginCash(270000)

		_, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, commands.ErrInsufficientCash)

		// The revocation itself is persisted.
		reloaded, loadErr := s.store.Load(s.ctx, s.operatorID)
		s.Require().NoError(loadErr)
		s.Nil(reloaded.ActiveCart().AppliedVoucher())
	})

	s.Run("error: insufficient cash", func() {
		s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		s.beginCash(200000)

		_, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, commands.ErrInsufficientCash)
	})

	s.Run("error: unconfirmed bank transfer", func() {
		s.seedCart(builder.NewCartItemBuilder().Build())
		_, err := s.useCase.Begin(s.ctx, s.operatorID, commands.BeginCheckoutInput{Method: cart.PaymentBankTransfer})
		s.Require().NoError(err)

		_, err = s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, commands.ErrTransferNotConfirmed)
	})

	s.Run("error: backend rejection preserves the cart for retry", func() {
		s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		s.beginCash(300000)

		s.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errors.New("order service down")).Times(1)

		_, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, commands.ErrOrderSubmissionFailed)

		reloaded, loadErr := s.store.Load(s.ctx, s.operatorID)
		s.Require().NoError(loadErr)
		s.Len(reloaded.ActiveCart().Items(), 1)
		s.Equal(cart.StatusAwaitingConfirmation, reloaded.Checkout().Status)
	})

	s.Run("success: secondary effect failures become warnings", func() {
		session := s.seedCart(builder.NewCartItemBuilder().WithUnitPrice(300000).Build())
		snapshot := builder.NewVoucherBuilder().BuildSnapshot()
		session.ActiveCart().ApplyVoucher(snapshot, 30000)
		s.Require().NoError(s.store.Save(s.ctx, session))
		s.beginCash(300000)

		s.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
		s.voucherRepo.EXPECT().IncrementUsage(gomock.Any(), snapshot.ID).
			Return(errors.New("update failed")).Times(1)
		s.statsRepo.EXPECT().RecordSale(gomock.Any(), int64(270000), testNow).
			Return(errors.New("stats unavailable")).Times(1)

		result, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().NoError(err)
		s.ElementsMatch([]string{commands.WarnVoucherIncrementFail, commands.WarnStatsUpdateFail}, result.Warnings)
	})

	s.Run("error: empty cart", func() {
		s.seedCart()

		_, err := s.useCase.Submit(s.ctx, s.operatorID)

		s.Require().ErrorIs(err, cart.ErrCartEmpty)
	})
}
