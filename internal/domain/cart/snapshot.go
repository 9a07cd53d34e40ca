package cart

import (
	"pos-core/internal/domain/voucher"

	"github.com/google/uuid"
)

// CartState is the persistence shape of one pending cart.
type CartState struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Items           []Item            `json:"items"`
	AppliedDiscount int64             `json:"appliedDiscount"`
	AppliedVoucher  *voucher.Snapshot `json:"appliedVoucher,omitempty"`
	CouponCode      string            `json:"couponCode,omitempty"`
}

// SessionState is the persistence shape of a whole operator session, used by
// the Redis-backed store to survive terminal restarts.
type SessionState struct {
	OperatorID      uuid.UUID     `json:"operatorId"`
	Carts           []CartState   `json:"carts"`
	ActiveCartID    *uuid.UUID    `json:"activeCartId,omitempty"`
	MainCart        CartState     `json:"mainCart"`
	DeletionRequest *uuid.UUID    `json:"deletionRequest,omitempty"`
	Checkout        CheckoutState `json:"checkout"`
}

func (c *PendingCart) State() CartState {
	return CartState{
		ID:              c.id,
		Name:            c.name,
		Items:           c.Items(),
		AppliedDiscount: c.appliedDiscount,
		AppliedVoucher:  c.AppliedVoucher(),
		CouponCode:      c.couponCode,
	}
}

func RestorePendingCart(state CartState) *PendingCart {
	items := make([]Item, len(state.Items))
	copy(items, state.Items)
	return &PendingCart{
		id:              state.ID,
		name:            state.Name,
		items:           items,
		appliedDiscount: state.AppliedDiscount,
		appliedVoucher:  state.AppliedVoucher,
		couponCode:      state.CouponCode,
	}
}

func (s *Session) State() SessionState {
	carts := make([]CartState, len(s.carts))
	for i, c := range s.carts {
		carts[i] = c.State()
	}
	return SessionState{
		OperatorID:      s.operatorID,
		Carts:           carts,
		ActiveCartID:    s.ActiveCartID(),
		MainCart:        s.mainCart.State(),
		DeletionRequest: s.deletionRequest,
		Checkout:        s.checkout,
	}
}

func RestoreSession(state SessionState) *Session {
	carts := make([]*PendingCart, len(state.Carts))
	for i, cs := range state.Carts {
		carts[i] = RestorePendingCart(cs)
	}
	session := &Session{
		operatorID:      state.OperatorID,
		carts:           carts,
		mainCart:        RestorePendingCart(state.MainCart),
		deletionRequest: state.DeletionRequest,
		checkout:        state.Checkout,
	}
	if state.ActiveCartID != nil {
		id := *state.ActiveCartID
		session.activeID = &id
	}
	return session
}
