package cart

import (
	"pos-core/internal/pkg/errs"
)

var (
	ErrCartEmpty          = errs.New("cart is empty")
	ErrCheckoutNotStarted = errs.New("checkout has not been started")
	ErrCheckoutInFlight   = errs.New("checkout submission already in flight")
)

type CheckoutStatus string

const (
	StatusIdle                 CheckoutStatus = "IDLE"
	StatusAwaitingConfirmation CheckoutStatus = "AWAITING_CONFIRMATION"
	StatusSubmitting           CheckoutStatus = "SUBMITTING"
	StatusCompleted            CheckoutStatus = "COMPLETED"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// CheckoutState is the transient checkout input for the active cart. It is
// reset after a completed sale; a failed submission returns it to
// AwaitingConfirmation with every field preserved for retry.
type CheckoutState struct {
	Status            CheckoutStatus `json:"status"`
	Method            PaymentMethod  `json:"method"`
	CashReceived      int64          `json:"cashReceived"`
	TransferConfirmed bool           `json:"transferConfirmed"`
	CustomerName      string         `json:"customerName"`
	CustomerPhone     string         `json:"customerPhone"`
}

func NewCheckoutState() CheckoutState {
	return CheckoutState{
		Status: StatusIdle,
		Method: PaymentCash,
	}
}

// Begin moves Idle → AwaitingConfirmation. The cart must not be empty.
func (c *CheckoutState) Begin(activeCart *PendingCart) error {
	if activeCart.IsEmpty() {
		return ErrCartEmpty
	}
	if c.Status == StatusSubmitting {
		return ErrCheckoutInFlight
	}
	c.Status = StatusAwaitingConfirmation
	return nil
}

func (c *CheckoutState) MarkSubmitting() error {
	if c.Status != StatusAwaitingConfirmation {
		return ErrCheckoutNotStarted
	}
	c.Status = StatusSubmitting
	return nil
}

// FailSubmission returns to AwaitingConfirmation so the operator can retry
// without re-entering anything.
func (c *CheckoutState) FailSubmission() {
	c.Status = StatusAwaitingConfirmation
}

// Reset restores defaults after a completed sale.
func (c *CheckoutState) Reset() {
	*c = NewCheckoutState()
}
