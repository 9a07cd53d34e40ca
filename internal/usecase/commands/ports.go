package commands

import (
	"context"
	"time"

	"pos-core/internal/domain/cart"
	"pos-core/internal/domain/promotion"
	"pos-core/internal/domain/voucher"

	"github.com/google/uuid"
)

// Write-side snapshots keep command handlers off the read-side query types.

// ProductSnapshot is the catalog's view of one sellable variant.
type ProductSnapshot struct {
	ProductID       uuid.UUID
	VariantID       uuid.UUID
	Name            string
	BasePrice       int64
	Stock           int32
	ColorID         uuid.UUID
	SizeID          uuid.UUID
	HasDiscount     bool
	DiscountedPrice int64
	OriginalPrice   int64
	DiscountPercent float64
}

func (p ProductSnapshot) Listing() promotion.Listing {
	return promotion.Listing{
		ProductID:       p.ProductID,
		BasePrice:       p.BasePrice,
		HasDiscount:     p.HasDiscount,
		DiscountedPrice: p.DiscountedPrice,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent,
	}
}

type OperatorSnapshot struct {
	ID       uuid.UUID
	Username string
	Role     string
	IsActive bool
}

// OrderLine is one submitted order position.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int32
	UnitPrice int64
	ColorID   uuid.UUID
	SizeID    uuid.UUID
}

// OrderDraft is the order submission payload assembled at checkout.
type OrderDraft struct {
	OrderNumber     string
	OperatorID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
	Lines           []OrderLine
	Subtotal        int64
	Discount        int64
	Total           int64
	VoucherID       *uuid.UUID
	PaymentMethod   cart.PaymentMethod
	Status          string
	PlacedAt        time.Time
}

type ProductRepository interface {
	FindVariant(ctx context.Context, productID, variantID uuid.UUID) (*ProductSnapshot, error)
}

type PromotionRepository interface {
	ListActive(ctx context.Context) ([]*promotion.Promotion, error)
}

type VoucherRepository interface {
	FindActiveByCode(ctx context.Context, code string) (*voucher.Snapshot, error)
	// IncrementUsage is best-effort after a completed sale.
	IncrementUsage(ctx context.Context, voucherID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, draft *OrderDraft) (uuid.UUID, error)
}

type StatsRepository interface {
	RecordSale(ctx context.Context, totalAmount int64, soldAt time.Time) error
}

type OperatorRepository interface {
	FindByUsername(ctx context.Context, username string) (*OperatorSnapshot, string, error)
}

// SessionStore owns the per-operator cart session state. Implementations are
// process-local memory or Redis; command handlers are agnostic.
type SessionStore interface {
	Load(ctx context.Context, operatorID uuid.UUID) (*cart.Session, error)
	Save(ctx context.Context, session *cart.Session) error
}
