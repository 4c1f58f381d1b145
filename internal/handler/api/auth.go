package api

import (
	"net/http"

	reqdto "facility-parking/internal/handler/dto/request"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/internal/handler/httperr"
	"facility-parking/internal/handler/middleware"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/cookie"
	"facility-parking/internal/pkg/errs"
	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands commands.AuthCommands
	queries  queries.AdminQueries
	config   config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, adminQueries queries.AdminQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands: authCommands,
		queries:  adminQueries,
		config:   cfg,
	}
}

// @Summary Admin login
// @Description Sets the admin_session cookie and returns the same token in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		case errs.Is(err, commands.ErrAdminNotApproved):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is pending approval", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.config.Cookie, result.Token, h.config.JWT.Duration)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Admin logout
// @Description Clears the session cookie. Tokens are stateless and expire on their own.
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.config.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} resdto.AdminResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoAdmin, "Unauthorized", nil)
		return
	}

	view, err := h.queries.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrAdminNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		case errs.Is(err, queries.ErrAdminNotApproved):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is pending approval", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminView(view))
}
