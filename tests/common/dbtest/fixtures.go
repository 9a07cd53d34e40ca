//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pos-core/internal/domain/voucher"
	"pos-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"; precomputed so fixtures stay fast.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestOperator(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	operatorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO operators (id, username, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (username) DO NOTHING",
		operatorID, username, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM operators WHERE username = $1", username).Scan(&operatorID)
	}

	return operatorID
}

type TestVariant struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	ColorID   uuid.UUID
	SizeID    uuid.UUID
}

func CreateTestProduct(t *testing.T, db DBLike, name string, basePrice int64, stock int32) TestVariant {
	t.Helper()

	v := TestVariant{
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		ColorID:   uuid.New(),
		SizeID:    uuid.New(),
	}

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, base_price) VALUES ($1, $2, $3)",
		v.ProductID, name, basePrice)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO product_variants (id, product_id, color_id, size_id, stock) VALUES ($1, $2, $3, $4, $5)",
		v.VariantID, v.ProductID, v.ColorID, v.SizeID, stock)
	require.NoError(t, err)

	return v
}

func CreateTestVoucher(t *testing.T, db DBLike, b *builder.VoucherBuilder) uuid.UUID {
	t.Helper()

	var percent *float64
	if b.Type == voucher.TypePercentage {
		percent = &b.Percent
	}

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO vouchers (id, code, type, value, percent, max_discount, min_order_value, quantity, used_count, status, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'ACTIVE', $10)`,
		b.ID, b.Code, b.Type, b.Value, percent, b.MaxDiscount, b.MinOrderValue, b.Quantity, b.UsedCount, b.EndDate)
	require.NoError(t, err)

	return b.ID
}

func CreateTestPromotion(t *testing.T, db DBLike, name string, percent float64, startsAt, endsAt time.Time, productIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	promotionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO promotions (id, name, discount_percent, status, starts_at, ends_at) VALUES ($1, $2, $3, 'ACTIVE', $4, $5)",
		promotionID, name, percent, startsAt, endsAt)
	require.NoError(t, err)

	for _, productID := range productIDs {
		_, err = db.Exec(ctx,
			"INSERT INTO promotion_products (promotion_id, product_id) VALUES ($1, $2)",
			promotionID, productID)
		require.NoError(t, err)
	}

	return promotionID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from an empty schema
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
