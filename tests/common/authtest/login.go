//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/handler/dto/request"
	"facility-parking/internal/pkg/cookie"
	"facility-parking/tests/common/dbtest"
	"facility-parking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// logs in through the API and returns the session cookie
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "session cookie not set")
	require.NotEmpty(t, session.Value, "session cookie is empty")

	return session
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string, role admin.Role) *http.Cookie {
	t.Helper()
	dbtest.CreateTestAdmin(t, db, username, role, true)
	return LoginAdmin(t, router, username, dbtest.DefaultPassword)
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
