package api

import (
	"errors"
	"net/http"

	reqdto "facility-parking/internal/handler/dto/request"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/internal/handler/httperr"
	"facility-parking/internal/handler/middleware"
	"facility-parking/internal/pkg/errs"
	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoAdmin = errors.New("admin missing from context")

type ReceiptHandler struct {
	commands commands.ReceiptCommands
	queries  queries.ReceiptQueries
}

func NewReceiptHandler(receiptCommands commands.ReceiptCommands, receiptQueries queries.ReceiptQueries) *ReceiptHandler {
	return &ReceiptHandler{
		commands: receiptCommands,
		queries:  receiptQueries,
	}
}

// @Summary Issue receipt
// @Description Prices the stay on the server and stores the issued receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body reqdto.IssueReceiptRequest true "Issue receipt request"
// @Success 201 {object} resdto.IssueReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/receipts [post]
func (h *ReceiptHandler) Issue(c *gin.Context) {
	var req reqdto.IssueReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.commands.Issue(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReceiptValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errs.Is(err, commands.ErrDuplicateApprovalNo):
			httperr.AbortWithError(c, http.StatusConflict, err, "Approval number already used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Header("Location", "/api/admin/receipts/"+result.ReceiptID.String())
	c.JSON(http.StatusCreated, resdto.IssueReceiptResponse{
		ID:     result.ReceiptID.String(),
		Amount: result.Amount,
	})
}

// @Summary List receipts
// @Description Issued receipts, newest first, with keyset pagination
// @Tags receipts
// @Produce json
// @Security CookieAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.ReceiptListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	var query reqdto.ListReceiptsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, next, err := h.queries.List(c.Request.Context(), &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceiptList(views, next))
}

// @Summary Get receipt
// @Tags receipts
// @Produce json
// @Security CookieAuth
// @Param id path string true "Receipt ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid receipt ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrReceiptNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceiptView(view))
}

// @Summary Delete receipt
// @Description Super admins only
// @Tags receipts
// @Security CookieAuth
// @Param id path string true "Receipt ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid receipt ID", nil)
		return
	}

	role, ok := middleware.GetAdminRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoAdmin, "Unauthorized", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id, role); err != nil {
		switch {
		case errs.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		case errs.Is(err, commands.ErrReceiptNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
