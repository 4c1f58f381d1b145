package response

import (
	"time"

	"facility-parking/internal/usecase/queries"
)

type ReceiptResponse struct {
	ID           string   `json:"id"`
	IssueDate    string   `json:"issue_date"`
	MerchantName string   `json:"merchant_name"`
	Amount       int64    `json:"amount"`
	Items        []string `json:"items"`
	ApprovalNo   string   `json:"approval_no"`
	CardName     string   `json:"card_name"`
	CardNum      string   `json:"card_num"`
	EntryTime    string   `json:"entry_time"`
	ExitTime     string   `json:"exit_time"`
}

func FromReceiptView(v *queries.ReceiptView) *ReceiptResponse {
	return &ReceiptResponse{
		ID:           v.ID.String(),
		IssueDate:    v.IssueDate.Format(time.RFC3339),
		MerchantName: v.MerchantName,
		Amount:       v.Amount,
		Items:        v.Items,
		ApprovalNo:   v.ApprovalNo,
		CardName:     v.CardName,
		CardNum:      v.CardNum,
		EntryTime:    v.EntryTime.Format(time.RFC3339),
		ExitTime:     v.ExitTime.Format(time.RFC3339),
	}
}

type ReceiptListResponse struct {
	Items      []*ReceiptResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromReceiptList(views []*queries.ReceiptView, next *queries.Cursor) *ReceiptListResponse {
	items := make([]*ReceiptResponse, len(views))
	for i, v := range views {
		items[i] = FromReceiptView(v)
	}
	res := &ReceiptListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type IssueReceiptResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}
