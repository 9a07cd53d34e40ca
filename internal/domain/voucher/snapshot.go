package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownType = errors.New("unknown voucher type")

const (
	TypePercentage  = "PERCENTAGE"
	TypeFixedAmount = "FIXED_AMOUNT"
)

// Snapshot is the wire/persistence shape of a voucher. Carts hold one as a
// read-only copy taken at application time; the source record is never
// mutated through it.
type Snapshot struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Type          string    `json:"type"`
	Value         int64     `json:"value"`
	Percent       float64   `json:"percent,omitempty"`
	MaxDiscount   *int64    `json:"maxDiscount,omitempty"`
	MinOrderValue int64     `json:"minOrderValue"`
	Quantity      int32     `json:"quantity"`
	UsedCount     int32     `json:"usedCount"`
	EndDate       time.Time `json:"endDate"`
}

func (v *Voucher) Snapshot() Snapshot {
	s := Snapshot{
		ID:            v.id,
		Code:          v.code.String(),
		MinOrderValue: v.minOrderValue,
		Quantity:      v.quantity,
		UsedCount:     v.usedCount,
		EndDate:       v.endDate,
	}
	switch rule := v.rule.(type) {
	case Percentage:
		s.Type = TypePercentage
		s.Percent = rule.Value()
		s.MaxDiscount = rule.MaxDiscount()
	case FixedAmount:
		s.Type = TypeFixedAmount
		s.Value = rule.Value()
	}
	return s
}

func FromSnapshot(s Snapshot) (*Voucher, error) {
	rule, err := s.Rule()
	if err != nil {
		return nil, err
	}
	return NewVoucher(s.ID, s.Code, rule, s.MinOrderValue, s.Quantity, s.UsedCount, s.EndDate)
}

func (s Snapshot) Rule() (DiscountRule, error) {
	switch s.Type {
	case TypePercentage:
		rule, err := NewPercentage(s.Percent, s.MaxDiscount)
		if err != nil {
			return nil, err
		}
		return rule, nil
	case TypeFixedAmount:
		rule, err := NewFixedAmount(s.Value)
		if err != nil {
			return nil, err
		}
		return rule, nil
	default:
		return nil, ErrUnknownType
	}
}
