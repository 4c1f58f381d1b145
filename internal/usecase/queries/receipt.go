package queries

import (
	"context"
	"time"

	"facility-parking/internal/infra"
	"facility-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=receipt.go -destination=../../../tests/mock/queries/receipt_mock.go -package=queriesmock

var (
	ErrReceiptNotFound    = errs.New("receipt not found")
	ErrReceiptQueryFailed = errs.New("receipt query failed")
	ErrInvalidCursor      = errs.New("invalid cursor")
)

type ReceiptQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReceiptView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*ReceiptView, *Cursor, error)
}

type ReceiptReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReceiptView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*ReceiptView, error)
	FindKeyset(ctx context.Context, lastIssueDate time.Time, lastID uuid.UUID, limit int32) ([]*ReceiptView, error)
}

type receiptQueriesImpl struct {
	readStore ReceiptReadStore
}

func NewReceiptQueries(readStore ReceiptReadStore) ReceiptQueries {
	return &receiptQueriesImpl{readStore: readStore}
}

func (q *receiptQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReceiptView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReceiptNotFound)
		}
		return nil, errs.Mark(err, ErrReceiptQueryFailed)
	}
	return view, nil
}

// List returns receipts newest first. A non-nil next cursor means more pages exist.
func (q *receiptQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*ReceiptView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*ReceiptView
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindFirstPage(ctx, int32(limit+1))
	} else {
		lastIssueDate, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		rows, err = q.readStore.FindKeyset(ctx, lastIssueDate, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, ErrReceiptQueryFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.IssueDate, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
