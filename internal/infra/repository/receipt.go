package repository

import (
	"context"

	"facility-parking/internal/domain/receipt"
	"facility-parking/internal/infra"
	"facility-parking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertReceiptSQL = `
INSERT INTO receipts (
    id, issue_date, merchant_name, amount, items,
    approval_no, card_name, card_num, entry_time, exit_time
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	deleteReceiptSQL = `DELETE FROM receipts WHERE id = $1`
)

type ReceiptRepository struct {
	db db.DBTX
}

func NewReceiptRepository(conn db.DBTX) *ReceiptRepository {
	return &ReceiptRepository{db: conn}
}

func (r *ReceiptRepository) Create(ctx context.Context, rc *receipt.Receipt) error {
	_, err := r.db.Exec(ctx, insertReceiptSQL,
		rc.ID(),
		rc.IssueDate(),
		rc.MerchantName(),
		rc.Amount(),
		rc.Items(),
		rc.ApprovalNo().String(),
		rc.CardName(),
		rc.CardNum().String(),
		rc.EntryTime(),
		rc.ExitTime(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert receipt", err)
	}
	return nil
}

func (r *ReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReceiptSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete receipt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("receipt not found", nil, infra.KindNotFound)
	}
	return nil
}
