package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/domain/parking"
	"facility-parking/internal/domain/receipt"
	"facility-parking/internal/infra"
	"facility-parking/internal/pkg/clock"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=receipt.go -destination=../../../tests/mock/commands/receipt_mock.go -package=commandsmock

var (
	ErrReceiptValidation    = errs.New("receipt validation failed")
	ErrDuplicateApprovalNo  = errs.New("approval number already used")
	ErrReceiptNotFoundWrite = errs.New("receipt not found")
	ErrReceiptIssueFailed   = errs.New("receipt issue failed")
	ErrReceiptDeleteFailed  = errs.New("receipt delete failed")
	ErrForbidden            = errs.New("forbidden")
)

type IssueReceiptRequest struct {
	EntryTime  time.Time
	ExitTime   time.Time
	ApprovalNo string
	CardName   string
	CardNum    string
}

type IssueReceiptResult struct {
	ReceiptID uuid.UUID
	Amount    int64
}

type ReceiptCommands interface {
	Issue(ctx context.Context, req IssueReceiptRequest) (*IssueReceiptResult, error)
	Delete(ctx context.Context, receiptID uuid.UUID, actorRole admin.Role) error
}

type receiptCommandsImpl struct {
	writer     ReceiptWriter
	calculator parking.FeeCalculator
	clock      clock.Clock
	cfg        config.ReceiptConfig
	logger     *slog.Logger
}

func NewReceiptCommands(
	writer ReceiptWriter,
	calculator parking.FeeCalculator,
	clk clock.Clock,
	cfg config.ReceiptConfig,
	logger *slog.Logger,
) ReceiptCommands {
	return &receiptCommandsImpl{
		writer:     writer,
		calculator: calculator,
		clock:      clk,
		cfg:        cfg,
		logger:     logger,
	}
}

// Issue prices the stay itself; a client-supplied amount is never trusted.
func (uc *receiptCommandsImpl) Issue(ctx context.Context, req IssueReceiptRequest) (*IssueReceiptResult, error) {
	interval := parking.StayInterval{Start: req.EntryTime, End: req.ExitTime}
	quote := uc.calculator.Quote(interval.Start, interval.End, nil)

	cardName := req.CardName
	if cardName == "" {
		cardName = uc.cfg.CardName
	}

	rc, err := receipt.NewFromQuote(uc.clock, interval, quote, receipt.IssueParams{
		MerchantName: uc.cfg.MerchantName,
		ApprovalNo:   req.ApprovalNo,
		CardName:     cardName,
		CardNum:      req.CardNum,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrReceiptValidation)
	}

	if err := uc.writer.Create(ctx, rc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateApprovalNo)
		}
		return nil, errs.Mark(errs.Wrap(err, "create receipt"), ErrReceiptIssueFailed)
	}

	uc.logger.InfoContext(ctx, "receipt issued",
		"receipt_id", rc.ID(),
		"amount", rc.Amount(),
		"regime", quote.Regime.String(),
	)

	return &IssueReceiptResult{ReceiptID: rc.ID(), Amount: rc.Amount()}, nil
}

func (uc *receiptCommandsImpl) Delete(ctx context.Context, receiptID uuid.UUID, actorRole admin.Role) error {
	if actorRole != admin.RoleSuperAdmin {
		return ErrForbidden
	}

	if err := uc.writer.Delete(ctx, receiptID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReceiptNotFoundWrite)
		}
		return errs.Mark(errs.Wrap(err, "delete receipt"), ErrReceiptDeleteFailed)
	}

	uc.logger.InfoContext(ctx, "receipt deleted", "receipt_id", receiptID)
	return nil
}
