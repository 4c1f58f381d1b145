package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptView represents read-optimized receipt data
type ReceiptView struct {
	ID           uuid.UUID `json:"id"`
	IssueDate    time.Time `json:"issue_date"`
	MerchantName string    `json:"merchant_name"`
	Amount       int64     `json:"amount"`
	Items        []string  `json:"items"`
	ApprovalNo   string    `json:"approval_no"`
	CardName     string    `json:"card_name"`
	CardNum      string    `json:"card_num"`
	EntryTime    time.Time `json:"entry_time"`
	ExitTime     time.Time `json:"exit_time"`
}

// AdminView represents admin data safe to hand to callers (no password hash)
type AdminView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Approved  bool       `json:"approved"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
