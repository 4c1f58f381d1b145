package readstore

import (
	"context"
	"time"

	"facility-parking/internal/infra"
	"facility-parking/internal/infra/db"
	"facility-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const receiptColumns = `id, issue_date, merchant_name, amount, items, approval_no, card_name, card_num, entry_time, exit_time`

const (
	findReceiptByIDSQL = `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`

	findReceiptsFirstPageSQL = `SELECT ` + receiptColumns + `
FROM receipts
ORDER BY issue_date DESC, id DESC
LIMIT $1`

	findReceiptsKeysetSQL = `SELECT ` + receiptColumns + `
FROM receipts
WHERE (issue_date, id) < ($1, $2)
ORDER BY issue_date DESC, id DESC
LIMIT $3`
)

type receiptRow struct {
	ID           uuid.UUID `db:"id"`
	IssueDate    time.Time `db:"issue_date"`
	MerchantName string    `db:"merchant_name"`
	Amount       int64     `db:"amount"`
	Items        []string  `db:"items"`
	ApprovalNo   string    `db:"approval_no"`
	CardName     string    `db:"card_name"`
	CardNum      string    `db:"card_num"`
	EntryTime    time.Time `db:"entry_time"`
	ExitTime     time.Time `db:"exit_time"`
}

type ReceiptReadStore struct {
	db db.DBTX
}

func NewReceiptReadStore(conn db.DBTX) *ReceiptReadStore {
	return &ReceiptReadStore{db: conn}
}

func (s *ReceiptReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReceiptView, error) {
	rows, err := s.db.Query(ctx, findReceiptByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find receipt", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[receiptRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find receipt", err)
	}
	return toReceiptView(row), nil
}

func (s *ReceiptReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.ReceiptView, error) {
	return s.list(ctx, findReceiptsFirstPageSQL, limit)
}

func (s *ReceiptReadStore) FindKeyset(ctx context.Context, lastIssueDate time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReceiptView, error) {
	return s.list(ctx, findReceiptsKeysetSQL, lastIssueDate, lastID, limit)
}

func (s *ReceiptReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.ReceiptView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list receipts", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[receiptRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan receipts", err)
	}

	views := make([]*queries.ReceiptView, 0, len(collected))
	for _, row := range collected {
		views = append(views, toReceiptView(row))
	}
	return views, nil
}

func toReceiptView(row receiptRow) *queries.ReceiptView {
	return &queries.ReceiptView{
		ID:           row.ID,
		IssueDate:    row.IssueDate,
		MerchantName: row.MerchantName,
		Amount:       row.Amount,
		Items:        row.Items,
		ApprovalNo:   row.ApprovalNo,
		CardName:     row.CardName,
		CardNum:      row.CardNum,
		EntryTime:    row.EntryTime,
		ExitTime:     row.ExitTime,
	}
}
