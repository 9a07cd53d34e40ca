//go:build unit || e2e

package builder

import (
	"time"

	"pos-core/internal/domain/voucher"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	ID            uuid.UUID
	Code          string
	Type          string
	Value         int64
	Percent       float64
	MaxDiscount   *int64
	MinOrderValue int64
	Quantity      int32
	UsedCount     int32
	EndDate       time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	maxDiscount := int64(50000)
	return &VoucherBuilder{
		ID:            uuid.New(),
		Code:          "SALE10",
		Type:          voucher.TypePercentage,
		Percent:       10,
		MaxDiscount:   &maxDiscount,
		MinOrderValue: 100000,
		Quantity:      100,
		UsedCount:     0,
		EndDate:       time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.Code = code
	return b
}

func (b *VoucherBuilder) WithPercent(percent float64, maxDiscount *int64) *VoucherBuilder {
	b.Type = voucher.TypePercentage
	b.Percent = percent
	b.MaxDiscount = maxDiscount
	b.Value = 0
	return b
}

func (b *VoucherBuilder) WithFixedAmount(value int64) *VoucherBuilder {
	b.Type = voucher.TypeFixedAmount
	b.Value = value
	b.Percent = 0
	b.MaxDiscount = nil
	return b
}

func (b *VoucherBuilder) WithMinOrderValue(minOrderValue int64) *VoucherBuilder {
	b.MinOrderValue = minOrderValue
	return b
}

func (b *VoucherBuilder) WithUsage(quantity, usedCount int32) *VoucherBuilder {
	b.Quantity = quantity
	b.UsedCount = usedCount
	return b
}

func (b *VoucherBuilder) WithEndDate(endDate time.Time) *VoucherBuilder {
	b.EndDate = endDate
	return b
}

func (b *VoucherBuilder) BuildSnapshot() voucher.Snapshot {
	return voucher.Snapshot{
		ID:            b.ID,
		Code:          b.Code,
		Type:          b.Type,
		Value:         b.Value,
		Percent:       b.Percent,
		MaxDiscount:   b.MaxDiscount,
		MinOrderValue: b.MinOrderValue,
		Quantity:      b.Quantity,
		UsedCount:     b.UsedCount,
		EndDate:       b.EndDate,
	}
}

func (b *VoucherBuilder) BuildDomain() (*voucher.Voucher, error) {
	return voucher.FromSnapshot(b.BuildSnapshot())
}
