package commands

import (
	"context"
	"log/slog"

	"pos-core/internal/domain/cart"
	"pos-core/internal/domain/promotion"
	"pos-core/internal/domain/voucher"
	"pos-core/internal/infra"
	"pos-core/internal/pkg/clock"
	"pos-core/internal/pkg/errs"
	"pos-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errs.New("product not found")
	ErrVoucherNotFound     = errs.New("voucher not found")
	ErrVoucherBelowMinimum = errs.New("order total below voucher minimum")
	ErrVoucherExhausted    = errs.New("voucher quantity exhausted")
	ErrVoucherExpired      = errs.New("voucher expired")
	ErrNoVoucherApplied    = errs.New("no voucher applied")
	ErrSessionStoreFailed  = errs.New("cart session store failed")
)

// CartMutationResult carries the refreshed session view plus a flag telling
// the caller a previously applied voucher no longer qualifies and was
// silently removed rather than failing the mutation.
type CartMutationResult struct {
	Session        *queries.SessionView
	VoucherRevoked bool
}

type CartCommands interface {
	CreateCart(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error)
	SwitchActiveCart(ctx context.Context, operatorID, cartID uuid.UUID) (*queries.SessionView, error)
	RequestCartDeletion(ctx context.Context, operatorID, cartID uuid.UUID) (*queries.SessionView, error)
	ConfirmCartDeletion(ctx context.Context, operatorID, cartID uuid.UUID) (*queries.SessionView, error)
	AddItem(ctx context.Context, operatorID, productID, variantID uuid.UUID) (*CartMutationResult, error)
	UpdateQuantity(ctx context.Context, operatorID uuid.UUID, itemID string, delta int32) (*CartMutationResult, error)
	RemoveItem(ctx context.Context, operatorID uuid.UUID, itemID string) (*CartMutationResult, error)
	ClearItems(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error)
	ApplyVoucher(ctx context.Context, operatorID uuid.UUID, code string) (*queries.SessionView, error)
	RemoveVoucher(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error)
}

type cartUseCaseImpl struct {
	store         SessionStore
	productRepo   ProductRepository
	promotionRepo PromotionRepository
	voucherRepo   VoucherRepository
	clock         clock.Clock
}

func NewCartUseCase(
	store SessionStore,
	productRepo ProductRepository,
	promotionRepo PromotionRepository,
	voucherRepo VoucherRepository,
	clock clock.Clock,
) CartCommands {
	return &cartUseCaseImpl{
		store:         store,
		productRepo:   productRepo,
		promotionRepo: promotionRepo,
		voucherRepo:   voucherRepo,
		clock:         clock,
	}
}

func (c *cartUseCaseImpl) CreateCart(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if _, err := session.CreateCart(); err != nil {
		return nil, err
	}

	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) SwitchActiveCart(ctx context.Context, operatorID, cartID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if err := session.SwitchActive(cartID); err != nil {
		return nil, err
	}

	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) RequestCartDeletion(ctx context.Context, operatorID, cartID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if err := session.RequestDeletion(cartID); err != nil {
		return nil, err
	}

	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) ConfirmCartDeletion(ctx context.Context, operatorID, cartID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if err := session.ConfirmDeletion(cartID); err != nil {
		return nil, err
	}

	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) AddItem(ctx context.Context, operatorID, productID, variantID uuid.UUID) (*CartMutationResult, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	product, err := c.productRepo.FindVariant(ctx, productID, variantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrProductNotFound)
	}

	item := c.buildItem(ctx, product)
	if err := session.ActiveCart().AddItem(item); err != nil {
		return nil, err
	}

	return c.finishItemMutation(ctx, session)
}

func (c *cartUseCaseImpl) UpdateQuantity(ctx context.Context, operatorID uuid.UUID, itemID string, delta int32) (*CartMutationResult, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if _, err := session.ActiveCart().UpdateQuantity(itemID, delta); err != nil {
		return nil, err
	}

	return c.finishItemMutation(ctx, session)
}

func (c *cartUseCaseImpl) RemoveItem(ctx context.Context, operatorID uuid.UUID, itemID string) (*CartMutationResult, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if err := session.ActiveCart().RemoveItem(itemID); err != nil {
		return nil, err
	}

	return c.finishItemMutation(ctx, session)
}

func (c *cartUseCaseImpl) ClearItems(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	session.ActiveCart().Clear()
	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) ApplyVoucher(ctx context.Context, operatorID uuid.UUID, code string) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	voucherCode, err := voucher.NewCode(code)
	if err != nil {
		return nil, ErrVoucherNotFound
	}

	activeCart := session.ActiveCart()
	activeCart.SetCouponCode(voucherCode.String())

	snapshot, err := c.voucherRepo.FindActiveByCode(ctx, voucherCode.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, errs.Mark(err, ErrVoucherNotFound)
	}

	voucherEntity, err := voucher.FromSnapshot(*snapshot)
	if err != nil {
		return nil, errs.Mark(err, ErrVoucherNotFound)
	}

	subtotal := activeCart.Subtotal()
	if rejection := voucherEntity.Eligible(c.clock.Now(), subtotal); rejection != nil {
		return nil, markRejection(rejection)
	}

	activeCart.ApplyVoucher(*snapshot, voucherEntity.DiscountFor(subtotal))
	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) RemoveVoucher(ctx context.Context, operatorID uuid.UUID) (*queries.SessionView, error) {
	session, err := c.loadSession(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	activeCart := session.ActiveCart()
	if activeCart.AppliedVoucher() == nil {
		return nil, ErrNoVoucherApplied
	}

	activeCart.RevokeVoucher()
	activeCart.SetCouponCode("")
	return c.saveAndView(ctx, session)
}

func (c *cartUseCaseImpl) loadSession(ctx context.Context, operatorID uuid.UUID) (*cart.Session, error) {
	session, err := c.store.Load(ctx, operatorID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return session, nil
}

func (c *cartUseCaseImpl) saveAndView(ctx context.Context, session *cart.Session) (*queries.SessionView, error) {
	if err := c.store.Save(ctx, session); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return queries.NewSessionView(session), nil
}

// finishItemMutation re-checks the applied voucher against the new subtotal.
// A voucher that no longer qualifies is revoked rather than blocking the item
// change; the caller surfaces the revocation as a warning.
func (c *cartUseCaseImpl) finishItemMutation(ctx context.Context, session *cart.Session) (*CartMutationResult, error) {
	revoked := c.revalidateVoucher(session)

	view, err := c.saveAndView(ctx, session)
	if err != nil {
		return nil, err
	}
	return &CartMutationResult{Session: view, VoucherRevoked: revoked}, nil
}

func (c *cartUseCaseImpl) revalidateVoucher(session *cart.Session) bool {
	activeCart := session.ActiveCart()
	snapshot := activeCart.AppliedVoucher()
	if snapshot == nil {
		return false
	}

	// An emptied cart always loses its voucher, even with no minimum.
	if activeCart.IsEmpty() {
		activeCart.RevokeVoucher()
		return true
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

// buildItem prices a variant at add time. Promotion lookup failures degrade
// to the catalog price so the sale can continue.
func (c *cartUseCaseImpl) buildItem(ctx context.Context, product *ProductSnapshot) cart.Item {
	promotions, err := c.promotionRepo.ListActive(ctx)
	if err != nil {
		slog.Warn("failed to list active promotions, pricing without them", "error", err)
		promotions = nil
	}

	quote := promotion.Resolve(product.Listing(), promotions, c.clock.Now())
	return cart.Item{
		ID:              cart.ItemID(product.ProductID, product.VariantID),
		ProductID:       product.ProductID,
		VariantID:       product.VariantID,
		Name:            product.Name,
		UnitPrice:       quote.UnitPrice,
		OriginalPrice:   quote.OriginalPrice,
		DiscountPercent: quote.DiscountPercent,
		HasDiscount:     quote.HasDiscount,
		Stock:           product.Stock,
		ColorID:         product.ColorID,
		SizeID:          product.SizeID,
		PriceWarning:    quote.PriceWarning,
	}
}

func markRejection(rejection *voucher.Rejection) error {
	switch rejection.Reason {
	case voucher.ReasonBelowMinimum:
		return ErrVoucherBelowMinimum
	case voucher.ReasonExhausted:
		return ErrVoucherExhausted
	case voucher.ReasonExpired:
		return ErrVoucherExpired
	default:
		return ErrVoucherNotFound
	}
}
