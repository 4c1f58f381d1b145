//go:build unit || e2e

package builder

import (
	"time"

	reqdto "facility-parking/internal/handler/dto/request"
	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReceiptBuilder struct {
	EntryTime  time.Time
	ExitTime   time.Time
	ApprovalNo string
	CardName   string
	CardNum    string
	Amount     int64
	Items      []string
}

func NewReceiptBuilder() *ReceiptBuilder {
	return &ReceiptBuilder{
		EntryTime:  fixedNow,
		ExitTime:   fixedNow.Add(26 * time.Hour),
		ApprovalNo: "A1234567",
		CardName:   "Credit Card",
		CardNum:    "1234-5678-9012-3456",
		Amount:     22000,
		Items:      []string{"Parking Fee (26h 0m)", "Daily pass x2", "Hourly pass x2"},
	}
}

func (b *ReceiptBuilder) With(mutate func(*ReceiptBuilder)) *ReceiptBuilder {
	mutate(b)
	return b
}

func (b *ReceiptBuilder) WithStay(entry time.Time, d time.Duration) *ReceiptBuilder {
	b.EntryTime = entry
	b.ExitTime = entry.Add(d)
	return b
}

func (b *ReceiptBuilder) WithApprovalNo(no string) *ReceiptBuilder {
	b.ApprovalNo = no
	return b
}

func (b *ReceiptBuilder) BuildDTO() reqdto.IssueReceiptRequest {
	return reqdto.IssueReceiptRequest{
		EntryTime:  b.EntryTime,
		ExitTime:   b.ExitTime,
		ApprovalNo: b.ApprovalNo,
		CardName:   b.CardName,
		CardNum:    b.CardNum,
	}
}

func (b *ReceiptBuilder) BuildCommand() commands.IssueReceiptRequest {
	return commands.IssueReceiptRequest{
		EntryTime:  b.EntryTime,
		ExitTime:   b.ExitTime,
		ApprovalNo: b.ApprovalNo,
		CardName:   b.CardName,
		CardNum:    b.CardNum,
	}
}

func (b *ReceiptBuilder) BuildReadModel() *queries.ReceiptView {
	return &queries.ReceiptView{
		ID:           uuid.New(),
		IssueDate:    b.ExitTime,
		MerchantName: "Digital Empire II",
		Amount:       b.Amount,
		Items:        b.Items,
		ApprovalNo:   b.ApprovalNo,
		CardName:     b.CardName,
		CardNum:      "****-****-****-3456",
		EntryTime:    b.EntryTime,
		ExitTime:     b.ExitTime,
	}
}
