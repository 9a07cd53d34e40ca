package response

import (
	"pos-core/internal/usecase/commands"
	"pos-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID              string    `json:"id"`
	ProductID       uuid.UUID `json:"productId"`
	VariantID       uuid.UUID `json:"variantId"`
	Name            string    `json:"name"`
	Quantity        int32     `json:"quantity"`
	UnitPrice       int64     `json:"unitPrice"`
	OriginalPrice   int64     `json:"originalPrice"`
	DiscountPercent float64   `json:"discountPercent"`
	HasDiscount     bool      `json:"hasDiscount"`
	Stock           int32     `json:"stock"`
	ColorID         uuid.UUID `json:"colorId"`
	SizeID          uuid.UUID `json:"sizeId"`
	PriceWarning    bool      `json:"priceWarning"`
}

type CartResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Items       []ItemResponse `json:"items"`
	Subtotal    int64          `json:"subtotal"`
	Discount    int64          `json:"discount"`
	Total       int64          `json:"total"`
	VoucherCode *string        `json:"voucherCode,omitempty"`
	CouponCode  string         `json:"couponCode,omitempty"`
	IsMain      bool           `json:"isMain"`
	IsActive    bool           `json:"isActive"`
}

type CheckoutStateResponse struct {
	Status            string `json:"status"`
	Method            string `json:"method"`
	CashReceived      int64  `json:"cashReceived"`
	TransferConfirmed bool   `json:"transferConfirmed"`
	CustomerName      string `json:"customerName,omitempty"`
	CustomerPhone     string `json:"customerPhone,omitempty"`
}

type SessionResponse struct {
	OperatorID      uuid.UUID             `json:"operatorId"`
	Carts           []CartResponse        `json:"carts"`
	ActiveCartID    *uuid.UUID            `json:"activeCartId,omitempty"`
	MainCart        CartResponse          `json:"mainCart"`
	ActiveCart      CartResponse          `json:"activeCart"`
	PendingDeletion *uuid.UUID            `json:"pendingDeletion,omitempty"`
	Checkout        CheckoutStateResponse `json:"checkout"`
}

type CartMutationResponse struct {
	SessionResponse
	VoucherRevoked bool `json:"voucherRevoked"`
}

func FromSessionView(view *queries.SessionView) *SessionResponse {
	var resp SessionResponse
	if err := copier.Copy(&resp, view); err != nil {
		return &SessionResponse{OperatorID: view.OperatorID}
	}
	if resp.Carts == nil {
		resp.Carts = []CartResponse{}
	}
	return &resp
}

func FromCartMutationResult(result *commands.CartMutationResult) *CartMutationResponse {
	return &CartMutationResponse{
		SessionResponse: *FromSessionView(result.Session),
		VoucherRevoked:  result.VoucherRevoked,
	}
}
