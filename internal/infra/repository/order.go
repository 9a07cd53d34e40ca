package repository

import (
	"context"
	"errors"
	"log/slog"

	"pos-core/internal/infra"
	"pos-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

const insertOrder = `
INSERT INTO orders (
	order_number, operator_id, customer_name, customer_phone, shipping_address,
	subtotal, discount, total, voucher_id, payment_method, status, placed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id
`

const insertOrderItem = `
INSERT INTO order_items (order_id, product_id, quantity, unit_price, color_id, size_id)
VALUES ($1, $2, $3, $4, $5, $6)
`

// Create writes the order header and its lines in one transaction. A
// duplicate order number maps to KindConflict so the caller can retry.
func (r *OrderRepository) Create(ctx context.Context, draft *commands.OrderDraft) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin order transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback order transaction", "error", rollbackErr)
		}
	}()

	var orderID uuid.UUID
	err = tx.QueryRow(ctx, insertOrder,
		draft.OrderNumber,
		draft.OperatorID,
		draft.CustomerName,
		draft.CustomerPhone,
		draft.ShippingAddress,
		draft.Subtotal,
		draft.Discount,
		draft.Total,
		draft.VoucherID,
		string(draft.PaymentMethod),
		draft.Status,
		draft.PlacedAt,
	).Scan(&orderID)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order number already exists", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	for _, line := range draft.Lines {
		if _, err := tx.Exec(ctx, insertOrderItem,
			orderID, line.ProductID, line.Quantity, line.UnitPrice, line.ColorID, line.SizeID,
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit order transaction", err)
	}
	return orderID, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
