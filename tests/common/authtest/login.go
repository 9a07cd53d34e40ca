//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"pos-core/internal/handler/dto/request"
	"pos-core/internal/handler/dto/response"
	"pos-core/tests/common/dbtest"
	"pos-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginOperator(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.AccessToken, "Access token missing from login response")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, role string) string {
	t.Helper()
	dbtest.CreateTestOperator(t, db, username, role)
	return LoginOperator(t, router, username, "password123")
}
