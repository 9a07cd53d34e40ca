package repository

import (
	"context"

	"pos-core/internal/domain/promotion"
	"pos-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionRepository struct {
	db *pgxpool.Pool
}

func NewPromotionRepository(db *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{db: db}
}

const listActivePromotions = `
SELECT p.id, p.name, p.discount_percent, p.discount_amount, p.starts_at, p.ends_at,
       COALESCE(array_agg(pp.product_id) FILTER (WHERE pp.product_id IS NOT NULL), '{}') AS product_ids
FROM promotions p
LEFT JOIN promotion_products pp ON pp.promotion_id = p.id
WHERE p.status = 'ACTIVE'
GROUP BY p.id
ORDER BY p.starts_at, p.id
`

// ListActive returns promotions in a stable order so that "first match wins"
// pricing is deterministic across calls.
func (r *PromotionRepository) ListActive(ctx context.Context) ([]*promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, listActivePromotions)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}
	defer rows.Close()

	var promotions []*promotion.Promotion
	for rows.Next() {
		var (
			id              uuid.UUID
			name            string
			discountPercent pgtype.Float8
			discountAmount  pgtype.Int8
			startsAt        pgtype.Timestamptz
			endsAt          pgtype.Timestamptz
			productIDs      []uuid.UUID
		)
		if err := rows.Scan(&id, &name, &discountPercent, &discountAmount, &startsAt, &endsAt, &productIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}

		var discount promotion.Discount
		if discountPercent.Valid {
			discount, err = promotion.NewPercentageDiscount(discountPercent.Float64)
		} else {
			discount, err = promotion.NewFixedDiscount(discountAmount.Int64)
		}
		if err != nil {
			return nil, infra.WrapRepoErr("invalid promotion discount", err)
		}

		promotions = append(promotions, promotion.NewPromotion(id, name, discount, startsAt.Time, endsAt.Time, productIDs))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read promotion rows", err)
	}
	return promotions, nil
}
