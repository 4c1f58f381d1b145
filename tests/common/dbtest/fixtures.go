//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var testTables = []string{"receipts", "admins"}

// inserts an admin whose password is DefaultPassword; existing usernames are reused
func CreateTestAdmin(t *testing.T, db DBLike, username string, role admin.Role, approved bool) uuid.UUID {
	t.Helper()

	hash, err := password.NewHasher(bcrypt.MinCost).Hash(DefaultPassword)
	require.NoError(t, err)

	adminID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO admins (id, username, password_hash, name, role, approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO NOTHING`,
		adminID, username, hash, "Test "+username, string(role), approved)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM admins WHERE username = $1", username).Scan(&adminID)
		require.NoError(t, err)
	}

	return adminID
}

func CountReceipts(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM receipts").Scan(&n)
	require.NoError(t, err)
	return n
}

// empties every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range testTables {
		if _, err := pool.Exec(ctx, "TRUNCATE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return nil
}
