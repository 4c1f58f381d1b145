//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/handler/dto/request"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/internal/pkg/cookie"
	"facility-parking/tests/common/authtest"
	"facility-parking/tests/common/dbtest"
	"facility-parking/tests/common/httptest"
	"facility-parking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestAdmin(s.T(), s.DB, "manager01", admin.RoleManager, true)
	dbtest.CreateTestAdmin(s.T(), s.DB, "root", admin.RoleSuperAdmin, true)
	dbtest.CreateTestAdmin(s.T(), s.DB, "pending01", admin.RoleManager, false)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: "manager01", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "super admin", username: "root", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown username", username: "nobody", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", username: "manager01", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "pending approval", username: "pending01", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty username", username: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", username: "manager01", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				require.Nil(t, httptest.ExtractCookie(w, cookie.SessionCookieName))
				return
			}

			var response resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
			require.NotEmpty(t, response.AccessToken)
			require.Equal(t, tt.username, response.Admin.Username)

			session := httptest.ExtractCookie(w, cookie.SessionCookieName)
			require.NotNil(t, session)
			require.Equal(t, response.AccessToken, session.Value)

			var lastLoginSet bool
			err := s.DB.QueryRow(t.Context(),
				"SELECT last_login IS NOT NULL FROM admins WHERE username = $1", tt.username).Scan(&lastLoginSet)
			require.NoError(t, err)
			require.True(t, lastLoginSet)
		})
	}
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("cookie session round trip", func() {
		t := s.T()
		session := authtest.LoginAdmin(t, s.Router, "manager01", dbtest.DefaultPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, []*http.Cookie{session}, "")
		var me resdto.AdminResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "manager01", me.Username)
		require.Equal(t, "MANAGER", me.Role)
		require.NotNil(t, me.LastLogin)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{session}, "")
		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})

	s.Run("bearer token", func() {
		t := s.T()
		adminID := dbtest.CreateTestAdmin(t, s.DB, "manager01", admin.RoleManager, true)
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, adminID, admin.RoleManager)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("no session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired token", func() {
		t := s.T()
		adminID := dbtest.CreateTestAdmin(t, s.DB, "manager01", admin.RoleManager, true)
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, adminID, admin.RoleManager)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
