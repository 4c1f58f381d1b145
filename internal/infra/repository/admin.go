package repository

import (
	"context"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/infra"
	"facility-parking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	findAdminByUsernameSQL = `
SELECT id, username, password_hash, name, role, approved, last_login, created_at, updated_at
FROM admins
WHERE username = $1`

	insertAdminSQL = `
INSERT INTO admins (id, username, password_hash, name, role, approved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateAdminLastLoginSQL = `UPDATE admins SET last_login = $2, updated_at = $2 WHERE id = $1`
)

type adminRow struct {
	ID           uuid.UUID  `db:"id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	Approved     bool       `db:"approved"`
	LastLogin    *time.Time `db:"last_login"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type AdminRepository struct {
	db db.DBTX
}

func NewAdminRepository(conn db.DBTX) *AdminRepository {
	return &AdminRepository{db: conn}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username admin.Username) (*admin.Admin, error) {
	rows, err := r.db.Query(ctx, findAdminByUsernameSQL, username.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by username", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[adminRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by username", err)
	}
	return toAdminDomain(row)
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	_, err := r.db.Exec(ctx, insertAdminSQL,
		a.ID(),
		a.Username().Value(),
		a.PasswordHash(),
		a.Name(),
		a.Role().String(),
		a.Approved(),
		a.CreatedAt(),
		a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert admin", err)
	}
	return nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, updateAdminLastLoginSQL, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return nil
}

func toAdminDomain(row adminRow) (*admin.Admin, error) {
	username, err := admin.NewUsername(row.Username)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt admin username", err, infra.KindDBFailure)
	}
	role, err := admin.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt admin role", err, infra.KindDBFailure)
	}
	return admin.ReconstructAdmin(
		row.ID,
		username,
		row.PasswordHash,
		row.Name,
		role,
		row.Approved,
		row.LastLogin,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
