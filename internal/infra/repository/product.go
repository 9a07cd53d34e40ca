package repository

import (
	"context"
	"errors"

	"pos-core/internal/infra"
	"pos-core/internal/usecase/commands"
	"pos-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const findVariant = `
SELECT p.id, v.id, p.name, p.base_price, v.stock, v.color_id, v.size_id
FROM product_variants v
JOIN products p ON p.id = v.product_id
WHERE p.id = $1 AND v.id = $2
`

func (r *ProductRepository) FindVariant(ctx context.Context, productID, variantID uuid.UUID) (*commands.ProductSnapshot, error) {
	var snapshot commands.ProductSnapshot
	err := r.db.QueryRow(ctx, findVariant, productID, variantID).Scan(
		&snapshot.ProductID,
		&snapshot.VariantID,
		&snapshot.Name,
		&snapshot.BasePrice,
		&snapshot.Stock,
		&snapshot.ColorID,
		&snapshot.SizeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product variant", err)
	}
	return &snapshot, nil
}

const listProducts = `
SELECT p.id, v.id, p.name, p.base_price, v.stock, v.color_id, v.size_id
FROM product_variants v
JOIN products p ON p.id = v.product_id
WHERE ($1 = '' OR p.name ILIKE '%' || $1 || '%')
ORDER BY p.name, v.id
LIMIT $2 OFFSET $3
`

func (r *ProductRepository) ListProducts(ctx context.Context, search string, limit, offset int32) ([]queries.ProductRow, error) {
	rows, err := r.db.Query(ctx, listProducts, search, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var products []queries.ProductRow
	for rows.Next() {
		var row queries.ProductRow
		if err := rows.Scan(&row.ProductID, &row.VariantID, &row.Name, &row.BasePrice, &row.Stock, &row.ColorID, &row.SizeID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		products = append(products, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return products, nil
}
