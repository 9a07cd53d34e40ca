//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"pos-core/internal/domain/operator"
	"pos-core/internal/handler/dto/request"
	"pos-core/internal/handler/dto/response"
	"pos-core/tests/common/authtest"
	"pos-core/tests/common/dbtest"
	"pos-core/tests/common/httptest"
	"pos-core/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	cartsURL = "/api/pos/carts"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestOperator(s.T(), s.DB, "cashier01", "cashier")
	dbtest.CreateTestOperator(s.T(), s.DB, "manager01", "admin")
	dbtest.CreateTestOperator(s.T(), s.DB, "inactive01", "cashier")

	ctx := context.Background()
	_, err := s.DB.Exec(ctx, "UPDATE operators SET is_active = false WHERE username = 'inactive01'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{
			name:           "success: valid credentials",
			username:       "cashier01",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error: unknown username",
			username:       "nobody",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "error: wrong password",
			username:       "cashier01",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "error: deactivated operator",
			username:       "inactive01",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "error: empty username",
			username:       "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error: password below minimum length",
			username:       "cashier01",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, tt.username, res.Username)
			}
		})
	}
}

func (s *authSuite) TestProtectedEndpoints() {
	s.Run("success: valid token reaches the session endpoint", func() {
		t := s.T()

		token := authtest.LoginOperator(t, s.Router, "cashier01", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("error: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: malformed token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartsURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: expired token", func() {
		t := s.T()

		token := s.jwtHelper.CreateExpiredToken(t, uuid.New(), operator.RoleCashier)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartsURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
