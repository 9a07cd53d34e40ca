package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"pos-core/internal/domain/cart"
	"pos-core/internal/domain/voucher"
	"pos-core/internal/pkg/clock"
	"pos-core/internal/pkg/config"
	"pos-core/internal/pkg/errs"
	"pos-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentMethod  = errs.New("invalid payment method")
	ErrInsufficientCash      = errs.New("cash received is less than the total")
	ErrTransferNotConfirmed  = errs.New("bank transfer has not been confirmed")
	ErrOrderSubmissionFailed = errs.New("order submission failed")
)

const (
	walkInCustomerName  = "Walk-in Customer"
	walkInCustomerPhone = "-"
	counterAddress      = "POS Counter"
	orderStatusPaid     = "PAID"
)

// Warning kinds attached to a completed sale. None of them reverses the sale.
const (
	WarnVoucherRevoked       = "VOUCHER_REVOKED"
	WarnVoucherIncrementFail = "VOUCHER_INCREMENT_FAILED"
	WarnStatsUpdateFail      = "STATS_UPDATE_FAILED"
)

type BeginCheckoutInput struct {
	Method        cart.PaymentMethod
	CustomerName  string
	CustomerPhone string
	CashReceived  int64
}

type InvoiceLine struct {
	Name      string
	Quantity  int32
	UnitPrice int64
	LineTotal int64
}

// InvoiceView is the printable record of a completed sale.
type InvoiceView struct {
	ShopName      string
	ShopAddress   string
	ShopPhone     string
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	Lines         []InvoiceLine
	Subtotal      int64
	Discount      int64
	Total         int64
	PaymentMethod string
	CashReceived  int64
	ChangeDue     int64
	IssuedAt      time.Time
}

type CheckoutResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	Invoice     *InvoiceView
	Session     *queries.SessionView
	Warnings    []string
}

type CheckoutCommands interface {
	Begin(ctx context.Context, operatorID uuid.UUID, input BeginCheckoutInput) (*queries.SessionView, error)
	ConfirmTransfer(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error)
	Cancel(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error)
	Submit(ctx context.Context, operatorID uuid.UUID) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	store       SessionStore
	orderRepo   OrderRepository
	voucherRepo VoucherRepository
	statsRepo   StatsRepository
	shop        config.ShopConfig
	clock       clock.Clock
}

func NewCheckoutUseCase(
	store SessionStore,
	orderRepo OrderRepository,
	voucherRepo VoucherRepository,
	statsRepo StatsRepository,
	shop config.ShopConfig,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		store:       store,
		orderRepo:   orderRepo,
		voucherRepo: voucherRepo,
		statsRepo:   statsRepo,
		shop:        shop,
		clock:       clock,
	}
}

// Begin captures payment intent and moves checkout to AwaitingConfirmation.
// It can be called again before submit to change method or customer fields.
func (c *checkoutUseCaseImpl) Begin(ctx context.Context, operatorID uuid.UUID, input BeginCheckoutInput) (*queries.SessionView, error) {
	if input.Method != cart.PaymentCash && input.Method != cart.PaymentBankTransfer {
		return nil, ErrInvalidPaymentMethod
	}

	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	checkout := session.Checkout()
	if err := checkout.Begin(session.ActiveCart()); err != nil {
		return nil, err
	}

	checkout.Method = input.Method
	checkout.CustomerName = input.CustomerName
	checkout.CustomerPhone = input.CustomerPhone
	checkout.CashReceived = input.CashReceived
	if input.Method != cart.PaymentBankTransfer {
		checkout.TransferConfirmed = false
	}

	return c.saveAndView(ctx, session)
}

// ConfirmTransfer records the manual payment-received confirmation required
// before a bank transfer sale can be submitted.
func (c *checkoutUseCaseImpl) ConfirmTransfer(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	checkout := session.Checkout()
	if checkout.Status != cart.StatusAwaitingConfirmation {
		return nil, cart.ErrCheckoutNotStarted
	}
	if checkout.Method != cart.PaymentBankTransfer {
		return nil, ErrInvalidPaymentMethod
	}

	checkout.TransferConfirmed = true
	return c.saveAndView(ctx, session)
}

// Cancel abandons an unsubmitted checkout. The cart is untouched.
func (c *checkoutUseCaseImpl) Cancel(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	checkout := session.Checkout()
	if checkout.Status == cart.StatusSubmitting {
		return nil, cart.ErrCheckoutInFlight
	}
	checkout.Reset()

	return c.saveAndView(ctx, session)
}

func (c *checkoutUseCaseImpl) Submit(ctx context.Context, operatorID uuid.UUID) (*CheckoutResult, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	activeCart := session.ActiveCart()
	checkout := session.Checkout()
	if activeCart.IsEmpty() {
		return nil, cart.ErrCartEmpty
	}

	var warnings []string
	if c.revalidateVoucher(activeCart) {
		warnings = append(warnings, WarnVoucherRevoked)
	}

	// Gates run against the final total, after any voucher revocation.
	switch checkout.Method {
	case cart.PaymentCash:
		if checkout.CashReceived < activeCart.Total() {
			c.persistBestEffort(ctx, session)
			return nil, ErrInsufficientCash
		}
	case cart.PaymentBankTransfer:
		if !checkout.TransferConfirmed {
			c.persistBestEffort(ctx, session)
			return nil, ErrTransferNotConfirmed
		}
	default:
		return nil, ErrInvalidPaymentMethod
	}

	if err := checkout.MarkSubmitting(); err != nil {
		return nil, err
	}
	if err := c.store.Save(ctx, session); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}

	now := c.clock.Now()
	draft := c.buildDraft(session, activeCart, now)

	orderID, err := c.orderRepo.Create(ctx, draft)
	if err != nil {
		checkout.FailSubmission()
		c.persistBestEffort(ctx, session)
		return nil, errs.Mark(err, ErrOrderSubmissionFailed)
	}

	warnings = append(warnings, c.runSecondaryEffects(ctx, draft)...)
	invoice := c.buildInvoice(activeCart, checkout, draft)

	activeCart.Clear()
	checkout.Reset()

	view, err := c.saveAndView(ctx, session)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{
		OrderID:     orderID,
		OrderNumber: draft.OrderNumber,
		Invoice:     invoice,
		Session:     view,
		Warnings:    warnings,
	}, nil
}

func (c *checkoutUseCaseImpl) buildDraft(session *cart.Session, activeCart *cart.PendingCart, now time.Time) *OrderDraft {
	items := activeCart.Items()
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			ColorID:   item.ColorID,
			SizeID:    item.SizeID,
		})
	}

	var voucherID *uuid.UUID
	if applied := activeCart.AppliedVoucher(); applied != nil {
		id := applied.ID
		voucherID = &id
	}

	checkout := session.Checkout()
	customerName := checkout.CustomerName
	if customerName == "" {
		customerName = walkInCustomerName
	}
	customerPhone := checkout.CustomerPhone
	if customerPhone == "" {
		customerPhone = walkInCustomerPhone
	}

	return &OrderDraft{
		OrderNumber:     newOrderNumber(now),
		OperatorID:      session.OperatorID(),
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		ShippingAddress: counterAddress,
		Lines:           lines,
		Subtotal:        activeCart.Subtotal(),
		Discount:        activeCart.AppliedDiscount(),
		Total:           activeCart.Total(),
		VoucherID:       voucherID,
		PaymentMethod:   checkout.Method,
		Status:          orderStatusPaid,
		PlacedAt:        now,
	}
}

// runSecondaryEffects performs the post-sale calls that must never reverse a
// completed order: voucher usage increment and the sales stats update.
func (c *checkoutUseCaseImpl) runSecondaryEffects(ctx context.Context, draft *OrderDraft) []string {
	var warnings []string
	if draft.VoucherID != nil {
		if err := c.voucherRepo.IncrementUsage(ctx, *draft.VoucherID); err != nil {
			slog.Warn("failed to increment voucher usage after sale",
				"voucher_id", *draft.VoucherID, "order_number", draft.OrderNumber, "error", err)
			warnings = append(warnings, WarnVoucherIncrementFail)
		}
	}
	if err := c.statsRepo.RecordSale(ctx, draft.Total, draft.PlacedAt); err != nil {
		slog.Warn("failed to record sale statistics",
			"order_number", draft.OrderNumber, "error", err)
		warnings = append(warnings, WarnStatsUpdateFail)
	}
	return warnings
}

func (c *checkoutUseCaseImpl) buildInvoice(activeCart *cart.PendingCart, checkout *cart.CheckoutState, draft *OrderDraft) *InvoiceView {
	items := activeCart.Items()
	lines := make([]InvoiceLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, InvoiceLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}

	var changeDue int64
	if checkout.Method == cart.PaymentCash {
		changeDue = checkout.CashReceived - draft.Total
		if changeDue < 0 {
			changeDue = 0
		}
	}

	return &InvoiceView{
		ShopName:      c.shop.Name,
		ShopAddress:   c.shop.Address,
		ShopPhone:     c.shop.Phone,
		OrderNumber:   draft.OrderNumber,
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		Lines:         lines,
		Subtotal:      draft.Subtotal,
		Discount:      draft.Discount,
		Total:         draft.Total,
		PaymentMethod: string(draft.PaymentMethod),
		CashReceived:  checkout.CashReceived,
		ChangeDue:     changeDue,
		IssuedAt:      draft.PlacedAt,
	}
}

func (c *checkoutUseCaseImpl) revalidateVoucher(activeCart *cart.PendingCart) bool {
	snapshot := activeCart.AppliedVoucher()
	if snapshot == nil {
		return false
	}

	voucherEntity, err := voucher.FromSnapshot(*snapshot)
	if err != nil {
		activeCart.RevokeVoucher()
		return true
	}

	subtotal := activeCart.Subtotal()
	if rejection := voucherEntity.Eligible(c.clock.Now(), subtotal); rejection != nil {
		activeCart.RevokeVoucher()
		return true
	}

	activeCart.ApplyVoucher(*snapshot, voucherEntity.DiscountFor(subtotal))
	return false
}

func (c *checkoutUseCaseImpl) loadSession(ctx context.Context, operatorID uuid.UUID) (*cart.Session, error) {
	session, err := c.store.Load(ctx, operatorID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return session, nil
}

func (c *checkoutUseCaseImpl) saveAndView(ctx context.Context, session *cart.Session) (*queries.SessionView, error) {
	if err := c.store.Save(ctx, session); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return queries.NewSessionView(session), nil
}

func (c *checkoutUseCaseImpl) persistBestEffort(ctx context.Context, session *cart.Session) {
	if err := c.store.Save(ctx, session); err != nil {
		slog.Warn("failed to persist cart session", "operator_id", session.OperatorID(), "error", err)
	}
}

// newOrderNumber keeps the legacy POS<HHMMSS> shape readable on receipts and
// appends a random suffix so two sales in the same second cannot collide.
func newOrderNumber(now time.Time) string {
	suffix := make([]byte, 2)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("POS%s-%04X", now.Format("150405"), now.UnixNano()&0xFFFF)
	}
	return fmt.Sprintf("POS%s-%02X%02X", now.Format("150405"), suffix[0], suffix[1])
}
