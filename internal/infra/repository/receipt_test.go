//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/domain/parking"
	"facility-parking/internal/domain/receipt"
	"facility-parking/internal/infra"
	"facility-parking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBTX implements db.DBTX
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func newReceipt(t *testing.T) *receipt.Receipt {
	t.Helper()
	entry := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	interval := parking.StayInterval{Start: entry, End: entry.Add(5 * time.Hour)}
	quote := parking.NewDefaultEngine().Quote(interval.Start, interval.End, nil)
	rc, err := receipt.NewFromQuote(clock.NewFixedClock(entry.Add(6*time.Hour)), interval, quote, receipt.IssueParams{ApprovalNo: "A1B2C3"})
	require.NoError(t, err)
	return rc
}

func TestReceiptRepository_Create(t *testing.T) {
	rc := newReceipt(t)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate approval number", mockErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := new(MockDBTX)
			conn.On("Exec", mock.Anything, insertReceiptSQL, mock.MatchedBy(func(args []any) bool {
				return len(args) == 10 && args[0] == rc.ID() && args[3] == int64(6500) && args[5] == "A1B2C3"
			})).Return(pgconn.NewCommandTag("INSERT 0 1"), tt.mockErr)

			err := NewReceiptRepository(conn).Create(context.Background(), rc)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
			}
			conn.AssertExpectations(t)
		})
	}
}

func TestReceiptRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		tag      string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: "DELETE 1"},
		{name: "missing row", tag: "DELETE 0", wantKind: infra.KindNotFound},
		{name: "database error", tag: "", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := new(MockDBTX)
			conn.On("Exec", mock.Anything, deleteReceiptSQL, []any{id}).
				Return(pgconn.NewCommandTag(tt.tag), tt.mockErr)

			err := NewReceiptRepository(conn).Delete(context.Background(), id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
			}
			conn.AssertExpectations(t)
		})
	}
}

func TestAdminRepository_UpdateLastLogin(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		conn := new(MockDBTX)
		conn.On("Exec", mock.Anything, updateAdminLastLoginSQL, []any{id, at}).
			Return(pgconn.NewCommandTag("UPDATE 1"), nil)

		require.NoError(t, NewAdminRepository(conn).UpdateLastLogin(context.Background(), id, at))
		conn.AssertExpectations(t)
	})

	t.Run("missing admin", func(t *testing.T) {
		conn := new(MockDBTX)
		conn.On("Exec", mock.Anything, updateAdminLastLoginSQL, []any{id, at}).
			Return(pgconn.NewCommandTag("UPDATE 0"), nil)

		err := NewAdminRepository(conn).UpdateLastLogin(context.Background(), id, at)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAdminRepository_FindByUsername_QueryFailure(t *testing.T) {
	conn := new(MockDBTX)
	conn.On("Query", mock.Anything, findAdminByUsernameSQL, []any{"manager01"}).Return(nil, assert.AnError)

	username, err := admin.NewUsername("manager01")
	require.NoError(t, err)

	_, err = NewAdminRepository(conn).FindByUsername(context.Background(), username)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
}
