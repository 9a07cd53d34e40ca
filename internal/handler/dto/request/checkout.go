package request

import (
	"pos-core/internal/domain/cart"
	"pos-core/internal/usecase/commands"
)

type BeginCheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=CASH BANK_TRANSFER"`
	CustomerName  string `json:"customerName" binding:"omitempty,max=120"`
	CustomerPhone string `json:"customerPhone" binding:"omitempty,max=32"`
	CashReceived  int64  `json:"cashReceived" binding:"omitempty,min=0"`
}

func (r BeginCheckoutRequest) ToInput() commands.BeginCheckoutInput {
	return commands.BeginCheckoutInput{
		Method:        cart.PaymentMethod(r.PaymentMethod),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CashReceived:  r.CashReceived,
	}
}
