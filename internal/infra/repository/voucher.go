package repository

import (
	"context"
	"errors"

	"pos-core/internal/domain/voucher"
	"pos-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VoucherRepository struct {
	db *pgxpool.Pool
}

func NewVoucherRepository(db *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{db: db}
}

const findActiveVoucherByCode = `
SELECT id, code, type, value, percent, max_discount, min_order_value, quantity, used_count, end_date
FROM vouchers
WHERE code = $1 AND status = 'ACTIVE'
`

func (r *VoucherRepository) FindActiveByCode(ctx context.Context, code string) (*voucher.Snapshot, error) {
	var (
		snapshot    voucher.Snapshot
		percent     pgtype.Float8
		maxDiscount pgtype.Int8
	)
	err := r.db.QueryRow(ctx, findActiveVoucherByCode, code).Scan(
		&snapshot.ID,
		&snapshot.Code,
		&snapshot.Type,
		&snapshot.Value,
		&percent,
		&maxDiscount,
		&snapshot.MinOrderValue,
		&snapshot.Quantity,
		&snapshot.UsedCount,
		&snapshot.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}

	if percent.Valid {
		snapshot.Percent = percent.Float64
	}
	if maxDiscount.Valid {
		value := maxDiscount.Int64
		snapshot.MaxDiscount = &value
	}
	return &snapshot, nil
}

const incrementVoucherUsage = `
UPDATE vouchers SET used_count = used_count + 1, updated_at = now() WHERE id = $1
`

func (r *VoucherRepository) IncrementUsage(ctx context.Context, voucherID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, incrementVoucherUsage, voucherID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment voucher usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
