package response

import (
	"pos-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	VariantID       uuid.UUID `json:"variantId"`
	Name            string    `json:"name"`
	UnitPrice       int64     `json:"unitPrice"`
	OriginalPrice   int64     `json:"originalPrice"`
	DiscountPercent float64   `json:"discountPercent"`
	HasDiscount     bool      `json:"hasDiscount"`
	Stock           int32     `json:"stock"`
	ColorID         uuid.UUID `json:"colorId"`
	SizeID          uuid.UUID `json:"sizeId"`
	PriceWarning    bool      `json:"priceWarning"`
}

func FromProductViews(views []queries.ProductView) []ProductResponse {
	var resp []ProductResponse
	if err := copier.Copy(&resp, views); err != nil || resp == nil {
		return []ProductResponse{}
	}
	return resp
}
