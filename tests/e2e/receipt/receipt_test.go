//go:build e2e

package receipt_test

import (
	"net/http"
	"testing"
	"time"

	"facility-parking/internal/domain/admin"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/tests/common/authtest"
	"facility-parking/tests/common/builder"
	"facility-parking/tests/common/dbtest"
	"facility-parking/tests/common/httptest"
	"facility-parking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL         = "/api/parking/quote"
	issueURL         = "/api/receipts"
	adminReceiptsURL = "/api/admin/receipts"
)

var entry = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type receiptSuite struct {
	e2e.SharedSuite
}

func TestReceiptSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(receiptSuite))
}

func (s *receiptSuite) issue(approvalNo string, d time.Duration) *resdto.IssueReceiptResponse {
	t := s.T()
	body := builder.NewReceiptBuilder().WithStay(entry, d).WithApprovalNo(approvalNo).BuildDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, body, "")

	var res resdto.IssueReceiptResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *receiptSuite) TestQuote() {
	s.Run("quote matches the receipt amount", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, map[string]any{
			"entry_time": entry.Format(time.RFC3339),
			"exit_time":  entry.Add(27 * time.Hour).Format(time.RFC3339),
		}, "")

		var quote resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, int64(23500), quote.TotalFee)

		issued := s.issue("Q0000001", 27*time.Hour)
		require.Equal(t, quote.TotalFee, issued.Amount)
	})
}

func (s *receiptSuite) TestIssueAndBrowse() {
	s.Run("issued receipt is visible to admins", func() {
		t := s.T()
		issued := s.issue("A1234567", 26*time.Hour)
		require.Equal(t, int64(22000), issued.Amount)

		session := authtest.CreateAndLogin(t, s.DB, s.Router, "manager01", admin.RoleManager)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, adminReceiptsURL+"/"+issued.ID, nil, []*http.Cookie{session}, "")

		var rc resdto.ReceiptResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rc)
		require.Equal(t, "A1234567", rc.ApprovalNo)
		require.Equal(t, "****-****-****-3456", rc.CardNum)
		require.Equal(t, "Digital Empire II", rc.MerchantName)
		require.Equal(t, []string{"Parking Fee (26h 0m)", "Daily pass x2", "Hourly pass x2"}, rc.Items)
	})

	s.Run("approval number is unique", func() {
		t := s.T()
		s.issue("DUP00001", time.Hour)

		body := builder.NewReceiptBuilder().WithStay(entry, 2*time.Hour).WithApprovalNo("dup00001").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Approval number already used")
		require.Equal(t, 1, dbtest.CountReceipts(t, s.DB))
	})

	s.Run("exit before entry is rejected", func() {
		t := s.T()
		body := builder.NewReceiptBuilder().WithStay(entry, -time.Hour).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Equal(t, 0, dbtest.CountReceipts(t, s.DB))
	})

	s.Run("listing pages through every receipt", func() {
		t := s.T()
		for _, no := range []string{"P0000001", "P0000002", "P0000003", "P0000004", "P0000005"} {
			s.issue(no, 3*time.Hour)
		}
		session := authtest.CreateAndLogin(t, s.DB, s.Router, "manager01", admin.RoleManager)

		seen := map[string]bool{}
		url := adminReceiptsURL + "?limit=2"
		for pages := 0; pages < 5; pages++ {
			w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, url, nil, []*http.Cookie{session}, "")
			var page resdto.ReceiptListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, rc := range page.Items {
				require.False(t, seen[rc.ID], "receipt %s listed twice", rc.ID)
				seen[rc.ID] = true
			}
			if page.NextCursor == "" {
				break
			}
			url = adminReceiptsURL + "?limit=2&after=" + page.NextCursor
		}
		require.Len(t, seen, 5)
	})

	s.Run("listing requires a session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminReceiptsURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *receiptSuite) TestDelete() {
	s.Run("managers cannot delete", func() {
		t := s.T()
		issued := s.issue("D0000001", time.Hour)
		session := authtest.CreateAndLogin(t, s.DB, s.Router, "manager01", admin.RoleManager)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, adminReceiptsURL+"/"+issued.ID, nil, []*http.Cookie{session}, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
		require.Equal(t, 1, dbtest.CountReceipts(t, s.DB))
	})

	s.Run("super admin deletes once", func() {
		t := s.T()
		issued := s.issue("D0000002", time.Hour)
		session := authtest.CreateAndLogin(t, s.DB, s.Router, "root", admin.RoleSuperAdmin)
		cookies := []*http.Cookie{session}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, adminReceiptsURL+"/"+issued.ID, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, 0, dbtest.CountReceipts(t, s.DB))

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, adminReceiptsURL+"/"+issued.ID, nil, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Receipt not found")
	})
}
