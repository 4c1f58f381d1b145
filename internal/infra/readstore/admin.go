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

const findAdminByIDSQL = `
SELECT id, username, name, role, approved, last_login
FROM admins
WHERE id = $1`

type adminViewRow struct {
	ID        uuid.UUID  `db:"id"`
	Username  string     `db:"username"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Approved  bool       `db:"approved"`
	LastLogin *time.Time `db:"last_login"`
}

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(conn db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: conn}
}

func (s *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminView, error) {
	rows, err := s.db.Query(ctx, findAdminByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[adminViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}
	return &queries.AdminView{
		ID:        row.ID,
		Username:  row.Username,
		Name:      row.Name,
		Role:      row.Role,
		Approved:  row.Approved,
		LastLogin: row.LastLogin,
	}, nil
}
