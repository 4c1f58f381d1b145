//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/handler/api"
	"facility-parking/internal/handler/middleware"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/cookie"
	"facility-parking/internal/pkg/errs"
	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"
	"facility-parking/tests/common/builder"
	"facility-parking/tests/common/httptest"
	"facility-parking/tests/common/testutil"
	commandsmock "facility-parking/tests/mock/commands"
	queriesmock "facility-parking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockAdminQueries
	handler      *api.AuthHandler
	currentAdmin uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			middleware.SetAdmin(c, s.currentAdmin, admin.RoleManager)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func loginResult(username string) *commands.LoginResult {
	return &commands.LoginResult{
		AdminID:   uuid.New(),
		Username:  username,
		Name:      "Parking Manager",
		Role:      admin.RoleManager,
		Token:     "test-jwt-token",
		ExpiresAt: time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC),
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	auth := builder.NewAuthBuilder()
	reqBody := auth.BuildDTO()

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildCommand()).
			Return(loginResult(auth.Username), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("2026-03-02T21:00:00Z", response.ExpiresAt)
		s.Equal(auth.Username, response.Admin.Username)
		s.Equal("MANAGER", response.Admin.Role)

		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Equal("test-jwt-token", session.Value)
		s.True(session.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "username boundary OK (3 chars)", mutate: testutil.Field("username", "abc"), expectCode: http.StatusOK},
			{name: "username boundary invalid (2 chars)", mutate: testutil.Field("username", "ab"), expectCode: http.StatusBadRequest},
			{name: "username boundary invalid (33 chars)", mutate: testutil.Field("username", strings.Repeat("a", 33)), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						username, _ := requestMap["username"].(string)
						password, _ := requestMap["password"].(string)
						expected := (&builder.AuthBuilder{Username: username, Password: password}).BuildCommand()
						s.mockCommands.EXPECT().Login(gomock.Any(), expected).
							Return(loginResult(username), nil)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: command errors are mapped", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "bad credentials", err: errs.Mark(errs.New("mismatch"), commands.ErrInvalidCredentials), expectCode: http.StatusUnauthorized, expectMsg: "Invalid username or password"},
			{name: "pending approval", err: errs.Mark(errs.New("pending"), commands.ErrAdminNotApproved), expectCode: http.StatusForbidden, expectMsg: "pending approval"},
			{name: "token failure", err: errs.Mark(errs.New("sign"), commands.ErrTokenGeneration), expectCode: http.StatusInternalServerError, expectMsg: "Internal error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the session cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Empty(session.Value)
		s.Less(session.MaxAge, 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current admin", func() {
		view := builder.NewAdminBuilder().BuildReadModel()
		s.currentAdmin = view.ID
		s.mockQueries.EXPECT().GetCurrentAdmin(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.AdminResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(view.Username, response.Username)
		s.Nil(response.LastLogin)
	})

	s.Run("error: 401 without an authenticated admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 when the admin no longer exists", func() {
		s.currentAdmin = uuid.New()
		s.mockQueries.EXPECT().GetCurrentAdmin(gomock.Any(), s.currentAdmin).
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrAdminNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 when approval was revoked", func() {
		s.currentAdmin = uuid.New()
		s.mockQueries.EXPECT().GetCurrentAdmin(gomock.Any(), s.currentAdmin).
			Return(nil, errs.Mark(errs.New("pending"), queries.ErrAdminNotApproved))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "pending approval")
	})
}
