package queries

import (
	"context"

	"pos-core/internal/domain/cart"
	"pos-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrSessionLoadFailed = errs.New("failed to load cart session")

// SessionReader is the read-side slice of the session store.
type SessionReader interface {
	Load(ctx context.Context, operatorID uuid.UUID) (*cart.Session, error)
}

type ItemView struct {
	ID              string
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
	PriceWarning    bool
}

type CartView struct {
	ID          uuid.UUID
	Name        string
	Items       []ItemView
	Subtotal    int64
	Discount    int64
	Total       int64
	VoucherCode *string
	CouponCode  string
	IsMain      bool
	IsActive    bool
}

type CheckoutView struct {
	Status            string
	Method            string
	CashReceived      int64
	TransferConfirmed bool
	CustomerName      string
	CustomerPhone     string
}

type SessionView struct {
	OperatorID      uuid.UUID
	Carts           []CartView
	ActiveCartID    *uuid.UUID
	MainCart        CartView
	ActiveCart      CartView
	PendingDeletion *uuid.UUID
	Checkout        CheckoutView
}

type CartQueries interface {
	GetSession(ctx context.Context, operatorID uuid.UUID) (*SessionView, error)
}

type cartQueriesImpl struct {
	reader SessionReader
}

func NewCartQueries(reader SessionReader) CartQueries {
	return &cartQueriesImpl{reader: reader}
}

func (q *cartQueriesImpl) GetSession(ctx context.Context, operatorID uuid.UUID) (*SessionView, error) {
	session, err := q.reader.Load(ctx, operatorID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionLoadFailed)
	}
	return NewSessionView(session), nil
}

// NewSessionView projects a session aggregate into its read model. ActiveCart
// duplicates either one pending cart or the main cart, matching the fallback
// rule used by mutations.
func NewSessionView(session *cart.Session) *SessionView {
	activeID := session.ActiveCartID()
	activeCart := session.ActiveCart()

	carts := make([]CartView, 0, len(session.Carts()))
	for _, c := range session.Carts() {
		carts = append(carts, newCartView(c, false, activeID != nil && *activeID == c.ID()))
	}

	checkout := session.Checkout()
	return &SessionView{
		OperatorID:      session.OperatorID(),
		Carts:           carts,
		ActiveCartID:    activeID,
		MainCart:        newCartView(session.MainCart(), true, activeID == nil),
		ActiveCart:      newCartView(activeCart, activeCart == session.MainCart(), true),
		PendingDeletion: session.PendingDeletion(),
		Checkout: CheckoutView{
			Status:            string(checkout.Status),
			Method:            string(checkout.Method),
			CashReceived:      checkout.CashReceived,
			TransferConfirmed: checkout.TransferConfirmed,
			CustomerName:      checkout.CustomerName,
			CustomerPhone:     checkout.CustomerPhone,
		},
	}
}

func newCartView(c *cart.PendingCart, isMain, isActive bool) CartView {
	var items []ItemView
	if err := copier.Copy(&items, c.Items()); err != nil {
		items = nil
	}

	var voucherCode *string
	if applied := c.AppliedVoucher(); applied != nil {
		code := applied.Code
		voucherCode = &code
	}

	return CartView{
		ID:          c.ID(),
		Name:        c.Name(),
		Items:       items,
		Subtotal:    c.Subtotal(),
		Discount:    c.AppliedDiscount(),
		Total:       c.Total(),
		VoucherCode: voucherCode,
		CouponCode:  c.CouponCode(),
		IsMain:      isMain,
		IsActive:    isActive,
	}
}
