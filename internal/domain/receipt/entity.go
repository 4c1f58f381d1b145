package receipt

import (
	"fmt"
	"strings"
	"time"

	"facility-parking/internal/domain/parking"
	"facility-parking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Receipt is an issued parking receipt. Its amount and items are fixed at issue time
// from a pricing result; the ledger never reprices.
type Receipt struct {
	id           uuid.UUID
	issueDate    time.Time
	merchantName string
	amount       int64
	items        []string
	approvalNo   ApprovalNo
	cardName     string
	cardNum      CardNumber
	entryTime    time.Time
	exitTime     time.Time
}

type IssueParams struct {
	MerchantName string
	ApprovalNo   string
	CardName     string
	CardNum      string
}

func NewFromQuote(
	clk clock.Clock,
	interval parking.StayInterval,
	quote parking.PricingResult,
	params IssueParams,
) (*Receipt, error) {
	if quote.IsOrderViolation() {
		return nil, ErrInvalidStay
	}
	if quote.TotalFee < 0 {
		return nil, ErrNegativeAmount
	}

	approvalNo, err := NewApprovalNo(params.ApprovalNo)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		id:           uuid.New(),
		issueDate:    clk.Now(),
		merchantName: orDefault(params.MerchantName, DefaultMerchantName),
		amount:       quote.TotalFee,
		items:        itemsFromQuote(quote),
		approvalNo:   approvalNo,
		cardName:     orDefault(params.CardName, DefaultCardName),
		cardNum:      NewCardNumber(params.CardNum),
		entryTime:    interval.Start,
		exitTime:     interval.End,
	}, nil
}

func ReconstructReceipt(
	id uuid.UUID,
	issueDate time.Time,
	merchantName string,
	amount int64,
	items []string,
	approvalNo ApprovalNo,
	cardName string,
	cardNum CardNumber,
	entryTime, exitTime time.Time,
) *Receipt {
	return &Receipt{
		id:           id,
		issueDate:    issueDate,
		merchantName: merchantName,
		amount:       amount,
		items:        items,
		approvalNo:   approvalNo,
		cardName:     cardName,
		cardNum:      cardNum,
		entryTime:    entryTime,
		exitTime:     exitTime,
	}
}

func itemsFromQuote(quote parking.PricingResult) []string {
	items := make([]string, 0, len(quote.Receipt.Applied)+1)
	items = append(items, fmt.Sprintf("%s (%s)", DefaultItem, quote.TotalDuration))
	for _, p := range quote.Receipt.Applied {
		items = append(items, fmt.Sprintf("%s x%d", p.Kind.Label(), p.Count))
	}
	return items
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func (r *Receipt) ID() uuid.UUID          { return r.id }
func (r *Receipt) IssueDate() time.Time   { return r.issueDate }
func (r *Receipt) MerchantName() string   { return r.merchantName }
func (r *Receipt) Amount() int64          { return r.amount }
func (r *Receipt) Items() []string        { return r.items }
func (r *Receipt) ApprovalNo() ApprovalNo { return r.approvalNo }
func (r *Receipt) CardName() string       { return r.cardName }
func (r *Receipt) CardNum() CardNumber    { return r.cardNum }
func (r *Receipt) EntryTime() time.Time   { return r.entryTime }
func (r *Receipt) ExitTime() time.Time    { return r.exitTime }
