package api

import (
	"errors"
	"net/http"

	"pos-core/internal/domain/cart"
	reqdto "pos-core/internal/handler/dto/request"
	resdto "pos-core/internal/handler/dto/response"
	"pos-core/internal/handler/middleware"
	"pos-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Begin checkout
// @Description Capture payment intent for the active cart and await confirmation
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BeginCheckoutRequest true "Payment intent"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pos/checkout/begin [post]
func (h *CheckoutHandler) Begin(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.BeginCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.checkoutCommands.Begin(c.Request.Context(), operatorID, req.ToInput())
	if err != nil {
		h.mapCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Confirm bank transfer
// @Description Record the manual payment-received confirmation for a bank transfer sale
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pos/checkout/confirm-transfer [post]
func (h *CheckoutHandler) ConfirmTransfer(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.checkoutCommands.ConfirmTransfer(c.Request.Context(), operatorID)
	if err != nil {
		h.mapCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Cancel checkout
// @Description Abandon an unsubmitted checkout; the cart is untouched
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Failure 409 {object} map[string]string
// @Router /pos/checkout/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.checkoutCommands.Cancel(c.Request.Context(), operatorID)
	if err != nil {
		h.mapCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Submit checkout
// @Description Validate the payment gate, submit the order and issue an invoice
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /pos/checkout/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.checkoutCommands.Submit(c.Request.Context(), operatorID)
	if err != nil {
		h.mapCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func (h *CheckoutHandler) mapCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrCartEmpty):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, commands.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment method",
		})
	case errors.Is(err, commands.ErrInsufficientCash):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cash received is less than the total",
		})
	case errors.Is(err, commands.ErrTransferNotConfirmed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Bank transfer has not been confirmed",
		})
	case errors.Is(err, cart.ErrCheckoutNotStarted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Checkout has not been started",
		})
	case errors.Is(err, cart.ErrCheckoutInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A checkout submission is already in flight",
		})
	case errors.Is(err, commands.ErrOrderSubmissionFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Order submission failed, the cart was preserved for retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
