package request

import (
	"time"

	"facility-parking/internal/usecase/commands"
)

type IssueReceiptRequest struct {
	EntryTime  time.Time `json:"entry_time" binding:"required"`
	ExitTime   time.Time `json:"exit_time" binding:"required"`
	ApprovalNo string    `json:"approval_no" binding:"required,max=32"`
	CardName   string    `json:"card_name" binding:"omitempty,max=50"`
	CardNum    string    `json:"card_num" binding:"omitempty,max=32"`
}

func (r *IssueReceiptRequest) ToCommand() commands.IssueReceiptRequest {
	return commands.IssueReceiptRequest{
		EntryTime:  r.EntryTime,
		ExitTime:   r.ExitTime,
		ApprovalNo: r.ApprovalNo,
		CardName:   r.CardName,
		CardNum:    r.CardNum,
	}
}

type ListReceiptsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
