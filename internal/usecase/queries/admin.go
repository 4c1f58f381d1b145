package queries

import (
	"context"

	"facility-parking/internal/infra"
	"facility-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin_mock.go -package=queriesmock

var (
	ErrAdminNotFound    = errs.New("admin not found")
	ErrAdminNotApproved = errs.New("admin not approved")
)

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error)
}

type AdminReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdminView, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{readStore: readStore}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error) {
	view, err := q.readStore.FindByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAdminNotFound)
		}
		return nil, err
	}

	// approval can be revoked after the token was issued
	if !view.Approved {
		return nil, ErrAdminNotApproved
	}

	return view, nil
}
