package queries

import (
	"context"
	"log/slog"

	"pos-core/internal/domain/promotion"
	"pos-core/internal/pkg/clock"
	"pos-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCatalogUnavailable = errs.New("product catalog unavailable")

// ProductRow is the raw catalog record before promotion pricing.
type ProductRow struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	Name      string
	BasePrice int64
	Stock     int32
	ColorID   uuid.UUID
	SizeID    uuid.UUID
}

type CatalogReadStore interface {
	ListProducts(ctx context.Context, search string, limit, offset int32) ([]ProductRow, error)
}

type PromotionReader interface {
	ListActive(ctx context.Context) ([]*promotion.Promotion, error)
}

// ProductView is a catalog row priced for display at the terminal.
type ProductView struct {
	ProductID       uuid.UUID
	VariantID       uuid.UUID
	Name            string
	UnitPrice       int64
	OriginalPrice   int64
	DiscountPercent float64
	HasDiscount     bool
	Stock           int32
	ColorID         uuid.UUID
	SizeID          uuid.UUID
	PriceWarning    bool
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, search string, limit, offset int32) ([]ProductView, error)
}

type catalogQueriesImpl struct {
	readStore  CatalogReadStore
	promotions PromotionReader
	clock      clock.Clock
}

func NewCatalogQueries(readStore CatalogReadStore, promotions PromotionReader, clock clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		readStore:  readStore,
		promotions: promotions,
		clock:      clock,
	}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, search string, limit, offset int32) ([]ProductView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := q.readStore.ListProducts(ctx, search, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	// Listing prices are display-only; a promotions outage degrades to base
	// prices instead of blanking the catalog.
	promotions, err := q.promotions.ListActive(ctx)
	if err != nil {
		slog.Warn("failed to list active promotions for catalog", "error", err)
		promotions = nil
	}

	now := q.clock.Now()
	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		quote := promotion.Resolve(promotion.Listing{
			ProductID: row.ProductID,
			BasePrice: row.BasePrice,
		}, promotions, now)

		views = append(views, ProductView{
			ProductID:       row.ProductID,
			VariantID:       row.VariantID,
			Name:            row.Name,
			UnitPrice:       quote.UnitPrice,
			OriginalPrice:   quote.OriginalPrice,
			DiscountPercent: quote.DiscountPercent,
			HasDiscount:     quote.HasDiscount,
			Stock:           row.Stock,
			ColorID:         row.ColorID,
			SizeID:          row.SizeID,
			PriceWarning:    quote.PriceWarning,
		})
	}
	return views, nil
}
