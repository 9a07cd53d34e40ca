package cart

import (
	"fmt"

	"pos-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxPendingCarts bounds concurrently held sales per operator session.
const MaxPendingCarts = 5

var (
	ErrCartLimitReached     = errs.New("pending cart limit reached")
	ErrCartNotFound         = errs.New("pending cart not found")
	ErrDeletionNotRequested = errs.New("cart deletion was not requested")
)

// Session holds one operator's pending carts, the active selection and the
// transient checkout state. When no pending cart exists or none is active,
// mutations fall through to an implicit main cart with identical semantics.
type Session struct {
	operatorID      uuid.UUID
	carts           []*PendingCart
	activeID        *uuid.UUID
	mainCart        *PendingCart
	deletionRequest *uuid.UUID
	checkout        CheckoutState
}

func NewSession(operatorID uuid.UUID) *Session {
	return &Session{
		operatorID: operatorID,
		mainCart:   NewPendingCart(uuid.New(), "Main"),
		checkout:   NewCheckoutState(),
	}
}

// CreateCart appends a new empty cart and activates it. The sixth concurrent
// cart is rejected and the session is left unchanged.
func (s *Session) CreateCart() (*PendingCart, error) {
	if len(s.carts) >= MaxPendingCarts {
		return nil, ErrCartLimitReached
	}

	created := NewPendingCart(uuid.New(), fmt.Sprintf("Cart %d", len(s.carts)+1))
	s.carts = append(s.carts, created)
	id := created.id
	s.activeID = &id
	return created, nil
}

// SwitchActive changes the selection only; no cart's items or discount state
// are touched.
func (s *Session) SwitchActive(cartID uuid.UUID) error {
	for _, c := range s.carts {
		if c.id == cartID {
			id := cartID
			s.activeID = &id
			return nil
		}
	}
	return ErrCartNotFound
}

// RequestDeletion is the first step of the two-step delete. It only records
// intent; the cart is untouched until ConfirmDeletion.
func (s *Session) RequestDeletion(cartID uuid.UUID) error {
	if _, err := s.cartByID(cartID); err != nil {
		return err
	}
	id := cartID
	s.deletionRequest = &id
	return nil
}

// ConfirmDeletion irrecoverably removes a cart previously marked by
// RequestDeletion. Deleting the active cart leaves no active selection; the
// session falls back to the main cart without promoting another cart.
func (s *Session) ConfirmDeletion(cartID uuid.UUID) error {
	if s.deletionRequest == nil || *s.deletionRequest != cartID {
		return ErrDeletionNotRequested
	}
	s.deletionRequest = nil

	for i, c := range s.carts {
		if c.id != cartID {
			continue
		}
		s.carts = append(s.carts[:i], s.carts[i+1:]...)
		if s.activeID != nil && *s.activeID == cartID {
			s.activeID = nil
		}
		return nil
	}
	return ErrCartNotFound
}

// ActiveCart resolves the cart receiving mutations: the active pending cart
// when one is selected, otherwise the implicit main cart.
func (s *Session) ActiveCart() *PendingCart {
	if s.activeID != nil {
		for _, c := range s.carts {
			if c.id == *s.activeID {
				return c
			}
		}
	}
	return s.mainCart
}

func (s *Session) cartByID(cartID uuid.UUID) (*PendingCart, error) {
	for _, c := range s.carts {
		if c.id == cartID {
			return c, nil
		}
	}
	return nil, ErrCartNotFound
}

func (s *Session) OperatorID() uuid.UUID { return s.operatorID }

func (s *Session) Carts() []*PendingCart {
	carts := make([]*PendingCart, len(s.carts))
	copy(carts, s.carts)
	return carts
}

func (s *Session) ActiveCartID() *uuid.UUID {
	if s.activeID == nil {
		return nil
	}
	id := *s.activeID
	return &id
}

func (s *Session) MainCart() *PendingCart { return s.mainCart }

func (s *Session) PendingDeletion() *uuid.UUID {
	if s.deletionRequest == nil {
		return nil
	}
	id := *s.deletionRequest
	return &id
}

func (s *Session) Checkout() *CheckoutState { return &s.checkout }
