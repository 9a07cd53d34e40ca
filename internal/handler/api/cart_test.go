//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pos-core/internal/domain/cart"
	"pos-core/internal/domain/operator"
	"pos-core/internal/handler/api"
	resdto "pos-core/internal/handler/dto/response"
	"pos-core/internal/usecase/commands"
	"pos-core/internal/usecase/queries"
	"pos-core/tests/common/httptest"
	commandsmock "pos-core/tests/mock/commands"
	queriesmock "pos-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	operatorID   uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.operatorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("operator_id", s.operatorID)
		c.Set("operator_role", operator.RoleCashier)
		c.Next()
	}

	// Setup routes
	s.router.GET("/pos/carts", authMiddleware, s.handler.GetSession)
	s.router.POST("/pos/carts", authMiddleware, s.handler.CreateCart)
	s.router.POST("/pos/carts/:id/activate", authMiddleware, s.handler.SwitchActiveCart)
	s.router.POST("/pos/carts/:id/delete-request", authMiddleware, s.handler.RequestCartDeletion)
	s.router.DELETE("/pos/carts/:id", authMiddleware, s.handler.ConfirmCartDeletion)
	s.router.POST("/pos/cart/items", authMiddleware, s.handler.AddItem)
	s.router.DELETE("/pos/cart/items", authMiddleware, s.handler.ClearItems)
	s.router.PATCH("/pos/cart/items/:itemId", authMiddleware, s.handler.UpdateQuantity)
	s.router.DELETE("/pos/cart/items/:itemId", authMiddleware, s.handler.RemoveItem)
	s.router.POST("/pos/cart/voucher", authMiddleware, s.handler.ApplyVoucher)
	s.router.DELETE("/pos/cart/voucher", authMiddleware, s.handler.RemoveVoucher)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) sessionView() *queries.SessionView {
	return queries.NewSessionView(cart.NewSession(s.operatorID))
}

// ================================================================================
// TestGetSession
// ================================================================================

func (s *CartHandlerTestSuite) TestGetSession() {
	s.Run("success: returns the session view", func() {
		s.mockQueries.EXPECT().GetSession(gomock.Any(), s.operatorID).
			Return(s.sessionView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pos/carts", nil, "bearer-token")

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.operatorID.String(), body.OperatorID.String())
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pos/carts", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestCreateCart
// ================================================================================

func (s *CartHandlerTestSuite) TestCreateCart() {
	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateCart(gomock.Any(), s.operatorID).
			Return(s.sessionView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/carts", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 Conflict at the cart limit", func() {
		s.mockCommands.EXPECT().CreateCart(gomock.Any(), s.operatorID).
			Return(nil, cart.ErrCartLimitReached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/carts", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "limit")
	})
}

// ================================================================================
// TestSwitchActiveCart
// ================================================================================

func (s *CartHandlerTestSuite) TestSwitchActiveCart() {
	cartID := uuid.New()

	s.Run("success: activates the cart", func() {
		s.mockCommands.EXPECT().SwitchActiveCart(gomock.Any(), s.operatorID, cartID).
			Return(s.sessionView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/carts/"+cartID.String()+"/activate", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown cart", func() {
		s.mockCommands.EXPECT().SwitchActiveCart(gomock.Any(), s.operatorID, cartID).
			Return(nil, cart.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/carts/"+cartID.String()+"/activate", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 for malformed cart id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/carts/not-a-uuid/activate", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart ID")
	})
}

// ================================================================================
// TestCartDeletion
// ================================================================================

func (s *CartHandlerTestSuite) TestCartDeletion() {
	cartID := uuid.New()

	s.Run("success: request then confirm", func() {
		s.mockCommands.EXPECT().RequestCartDeletion(gomock.Any(), s.operatorID, cartID).
			Return(s.sessionView(), nil).Times(1)
		s.mockCommands.EXPECT().ConfirmCartDeletion(gomock.Any(), s.operatorID, cartID).
			Return(s.sessionView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/carts/"+cartID.String()+"/delete-request", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/pos/carts/"+cartID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when confirming without a request", func() {
		s.mockCommands.EXPECT().ConfirmCartDeletion(gomock.Any(), s.operatorID, cartID).
			Return(nil, cart.ErrDeletionNotRequested).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/pos/carts/"+cartID.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not requested")
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/pos/cart/items"
	productID := uuid.New()
	variantID := uuid.New()
	reqBody := map[string]any{"productId": productID, "variantId": variantID}

	s.Run("success: returns the mutation result", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.operatorID, productID, variantID).
			Return(&commands.CartMutationResult{Session: s.sessionView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CartMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.VoucherRevoked)
	})

	s.Run("success: surfaces a voucher revocation", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.operatorID, productID, variantID).
			Return(&commands.CartMutationResult{Session: s.sessionView(), VoucherRevoked: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CartMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.VoucherRevoked)
	})

	s.Run("error: 404 for unknown product", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.operatorID, productID, variantID).
			Return(nil, commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 422 when stock is exceeded", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.operatorID, productID, variantID).
			Return(nil, cart.ErrStockExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "stock")
	})

	s.Run("error: 400 for missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"productId": productID}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestUpdateQuantity
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	itemID := uuid.New().String() + ":" + uuid.New().String()
	url := "/pos/cart/items/" + itemID

	s.Run("success: applies the delta", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), s.operatorID, itemID, int32(-1)).
			Return(&commands.CartMutationResult{Session: s.sessionView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": -1}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown line", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), s.operatorID, itemID, int32(1)).
			Return(nil, cart.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": 1}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 422 when the delta exceeds stock", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), s.operatorID, itemID, int32(99)).
			Return(nil, cart.ErrStockExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": 99}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "stock")
	})
}

// ================================================================================
// TestVoucher
// ================================================================================

func (s *CartHandlerTestSuite) TestApplyVoucher() {
	url := "/pos/cart/voucher"

	s.Run("success: code is normalized before the command", func() {
		s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), s.operatorID, "SALE10").
			Return(s.sessionView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": " sale10 "}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: voucher rejections map to status and reason", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			reason     string
		}{
			{name: "unknown code", err: commands.ErrVoucherNotFound, expectCode: http.StatusNotFound, reason: "NOT_FOUND"},
			{name: "below minimum", err: commands.ErrVoucherBelowMinimum, expectCode: http.StatusUnprocessableEntity, reason: "BELOW_MINIMUM"},
			{name: "exhausted", err: commands.ErrVoucherExhausted, expectCode: http.StatusUnprocessableEntity, reason: "EXHAUSTED"},
			{name: "expired", err: commands.ErrVoucherExpired, expectCode: http.StatusUnprocessableEntity, reason: "EXPIRED"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), s.operatorID, "SALE10").
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "SALE10"}, "bearer-token")

				s.Equal(tc.expectCode, rec.Code)
				s.Contains(rec.Body.String(), tc.reason)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRemoveVoucher() {
	url := "/pos/cart/voucher"

	s.Run("success: removes the applied voucher", func() {
		s.mockCommands.EXPECT().RemoveVoucher(gomock.Any(), s.operatorID).
			Return(s.sessionView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when no voucher is applied", func() {
		s.mockCommands.EXPECT().RemoveVoucher(gomock.Any(), s.operatorID).
			Return(nil, commands.ErrNoVoucherApplied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No voucher")
	})
}
