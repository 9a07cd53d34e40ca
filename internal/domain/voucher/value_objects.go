package voucher

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid voucher code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// DiscountRule is a closed set: Percentage or FixedAmount.
type DiscountRule interface {
	// AmountFor returns the raw discount for a subtotal, before the
	// subtotal clamp applied by Voucher.DiscountFor.
	AmountFor(subtotal int64) int64

	isDiscountRule()
}

type Percentage struct {
	value       float64
	maxDiscount *int64
}

func NewPercentage(value float64, maxDiscount *int64) (Percentage, error) {
	if value <= 0 || value > 100 {
		return Percentage{}, ErrInvalidDiscountPercent
	}
	if maxDiscount != nil && *maxDiscount < 0 {
		return Percentage{}, ErrInvalidDiscountAmount
	}
	return Percentage{value: value, maxDiscount: maxDiscount}, nil
}

func (p Percentage) Value() float64 { return p.value }

func (p Percentage) MaxDiscount() *int64 { return p.maxDiscount }

func (p Percentage) AmountFor(subtotal int64) int64 {
	amount := int64(float64(subtotal) * p.value / 100.0)
	if p.maxDiscount != nil && amount > *p.maxDiscount {
		amount = *p.maxDiscount
	}
	return amount
}

func (p Percentage) isDiscountRule() {}

type FixedAmount struct {
	value int64
}

func NewFixedAmount(value int64) (FixedAmount, error) {
	if value < 0 {
		return FixedAmount{}, ErrInvalidDiscountAmount
	}
	return FixedAmount{value: value}, nil
}

func (f FixedAmount) Value() int64 { return f.value }

func (f FixedAmount) AmountFor(_ int64) int64 {
	return f.value
}

func (f FixedAmount) isDiscountRule() {}

// RejectionReason identifies which eligibility check failed first.
type RejectionReason string

const (
	ReasonNotFound     RejectionReason = "NOT_FOUND"
	ReasonBelowMinimum RejectionReason = "BELOW_MINIMUM"
	ReasonExhausted    RejectionReason = "EXHAUSTED"
	ReasonExpired      RejectionReason = "EXPIRED"
)

// Rejection is returned when a voucher fails an eligibility check. It blocks
// the apply operation but is not a hard failure.
type Rejection struct {
	Reason RejectionReason
}

func (r *Rejection) Error() string {
	return "voucher rejected: " + string(r.Reason)
}
