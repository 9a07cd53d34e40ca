package repository

import (
	"context"
	"time"

	"pos-core/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

const upsertDailyStats = `
INSERT INTO sales_stats (day, orders_count, revenue)
VALUES ($1::date, 1, $2)
ON CONFLICT (day) DO UPDATE
SET orders_count = sales_stats.orders_count + 1,
    revenue = sales_stats.revenue + EXCLUDED.revenue
`

func (r *StatsRepository) RecordSale(ctx context.Context, totalAmount int64, soldAt time.Time) error {
	if _, err := r.db.Exec(ctx, upsertDailyStats, soldAt, totalAmount); err != nil {
		return infra.WrapRepoErr("failed to record daily sales stats", err)
	}
	return nil
}
