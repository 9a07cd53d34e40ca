package request

import (
	"strings"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	VariantID uuid.UUID `json:"variantId" binding:"required"`
}

type UpdateQuantityRequest struct {
	// Delta is applied to the current quantity; a result of zero or less
	// removes the line.
	Delta int32 `json:"delta" binding:"required"`
}

type ApplyVoucherRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyVoucherRequest) NormalizedCode() string {
	return strings.TrimSpace(strings.ToUpper(r.Code))
}
