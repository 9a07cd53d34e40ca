package api

import (
	"errors"
	"net/http"

	"pos-core/internal/domain/cart"
	reqdto "pos-core/internal/handler/dto/request"
	resdto "pos-core/internal/handler/dto/response"
	"pos-core/internal/handler/middleware"
	"pos-core/internal/usecase/commands"
	"pos-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Get cart session
// @Description Get all pending carts and the active selection for the operator
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Router /pos/carts [get]
func (h *CartHandler) GetSession(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartQueries.GetSession(c.Request.Context(), operatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Create pending cart
// @Description Create a new pending cart; at most 5 can be held at once
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pos/carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartCommands.CreateCart(c.Request.Context(), operatorID)
	if err != nil {
		h.mapSessionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionView(view))
}

// @Summary Switch active cart
// @Description Make another pending cart the target of item mutations
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /pos/carts/{id}/activate [post]
func (h *CartHandler) SwitchActiveCart(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID format"})
		return
	}

	view, err := h.cartCommands.SwitchActiveCart(c.Request.Context(), operatorID, cartID)
	if err != nil {
		h.mapSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Request cart deletion
// @Description First step of the two-step delete; records intent only
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /pos/carts/{id}/delete-request [post]
func (h *CartHandler) RequestCartDeletion(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID format"})
		return
	}

	view, err := h.cartCommands.RequestCartDeletion(c.Request.Context(), operatorID, cartID)
	if err != nil {
		h.mapSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Confirm cart deletion
// @Description Second step of the two-step delete; removes the cart irrecoverably
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pos/carts/{id} [delete]
func (h *CartHandler) ConfirmCartDeletion(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID format"})
		return
	}

	view, err := h.cartCommands.ConfirmCartDeletion(c.Request.Context(), operatorID, cartID)
	if err != nil {
		h.mapSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Add item to active cart
// @Description Add one unit of a product variant; merges with an existing line
// @Tags carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddItemRequest true "Item to add"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pos/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cartCommands.AddItem(c.Request.Context(), operatorID, req.ProductID, req.VariantID)
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartMutationResult(result))
}

// @Summary Update item quantity
// @Description Apply a quantity delta; a result of zero or less removes the line
// @Tags carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Cart line ID"
// @Param request body reqdto.UpdateQuantityRequest true "Quantity delta"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pos/cart/items/{itemId} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cartCommands.UpdateQuantity(c.Request.Context(), operatorID, c.Param("itemId"), req.Delta)
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartMutationResult(result))
}

// @Summary Remove item
// @Description Remove a line from the active cart unconditionally
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Cart line ID"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 404 {object} map[string]string
// @Router /pos/cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.cartCommands.RemoveItem(c.Request.Context(), operatorID, c.Param("itemId"))
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartMutationResult(result))
}

// @Summary Clear active cart
// @Description Empty the active cart's items, voucher and coupon code
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Router /pos/cart/items [delete]
func (h *CartHandler) ClearItems(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartCommands.ClearItems(c.Request.Context(), operatorID)
	if err != nil {
		h.mapSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Apply voucher
// @Description Validate a voucher code against the active cart and apply its discount
// @Tags carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyVoucherRequest true "Voucher code"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pos/cart/voucher [post]
func (h *CartHandler) ApplyVoucher(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ApplyVoucherRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.cartCommands.ApplyVoucher(c.Request.Context(), operatorID, req.NormalizedCode())
	if err != nil {
		h.mapVoucherError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Remove voucher
// @Description Remove the applied voucher from the active cart
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /pos/cart/voucher [delete]
func (h *CartHandler) RemoveVoucher(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartCommands.RemoveVoucher(c.Request.Context(), operatorID)
	if err != nil {
		if errors.Is(err, commands.ErrNoVoucherApplied) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No voucher applied"})
			return
		}
		h.mapSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

func (h *CartHandler) mapSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrCartLimitReached):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Pending cart limit reached",
		})
	case errors.Is(err, cart.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
	case errors.Is(err, cart.ErrDeletionNotRequested):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cart deletion was not requested",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *CartHandler) mapItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart item not found",
		})
	case errors.Is(err, cart.ErrStockExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Quantity exceeds available stock",
		})
	default:
		h.mapSessionError(c, err)
	}
}

func (h *CartHandler) mapVoucherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVoucherNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Voucher not found", "reason": "NOT_FOUND",
		})
	case errors.Is(err, commands.ErrVoucherBelowMinimum):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Order total below voucher minimum", "reason": "BELOW_MINIMUM",
		})
	case errors.Is(err, commands.ErrVoucherExhausted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Voucher has been fully used", "reason": "EXHAUSTED",
		})
	case errors.Is(err, commands.ErrVoucherExpired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Voucher has expired", "reason": "EXPIRED",
		})
	default:
		h.mapSessionError(c, err)
	}
}
