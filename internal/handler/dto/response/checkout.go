package response

import (
	"time"

	"pos-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InvoiceLineResponse struct {
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

type InvoiceResponse struct {
	ShopName      string                `json:"shopName"`
	ShopAddress   string                `json:"shopAddress,omitempty"`
	ShopPhone     string                `json:"shopPhone,omitempty"`
	OrderNumber   string                `json:"orderNumber"`
	CustomerName  string                `json:"customerName"`
	CustomerPhone string                `json:"customerPhone"`
	Lines         []InvoiceLineResponse `json:"lines"`
	Subtotal      int64                 `json:"subtotal"`
	Discount      int64                 `json:"discount"`
	Total         int64                 `json:"total"`
	PaymentMethod string                `json:"paymentMethod"`
	CashReceived  int64                 `json:"cashReceived"`
	ChangeDue     int64                 `json:"changeDue"`
	IssuedAt      time.Time             `json:"issuedAt"`
}

type CheckoutResponse struct {
	OrderID     uuid.UUID        `json:"orderId"`
	OrderNumber string           `json:"orderNumber"`
	Invoice     *InvoiceResponse `json:"invoice"`
	Session     *SessionResponse `json:"session"`
	Warnings    []string         `json:"warnings,omitempty"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	var invoice InvoiceResponse
	if err := copier.Copy(&invoice, result.Invoice); err != nil {
		invoice = InvoiceResponse{OrderNumber: result.OrderNumber}
	}
	if invoice.Lines == nil {
		invoice.Lines = []InvoiceLineResponse{}
	}

	return &CheckoutResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Invoice:     &invoice,
		Session:     FromSessionView(result.Session),
		Warnings:    result.Warnings,
	}
}
