//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/infra"
	"facility-parking/internal/pkg/clock"
	"facility-parking/internal/pkg/errs"
	"facility-parking/internal/pkg/password"
	"facility-parking/internal/usecase/commands"
	"facility-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminStore struct {
	mock.Mock
}

func (m *mockAdminStore) FindByUsername(ctx context.Context, username admin.Username) (*admin.Admin, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(*admin.Admin)
	return a, args.Error(1)
}

func (m *mockAdminStore) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type stubTokenIssuer struct {
	err error
}

func (s stubTokenIssuer) GenerateToken(adminID uuid.UUID, role admin.Role) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "token-" + adminID.String() + "-" + role.String(), issuedAt.Add(time.Hour), nil
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hasher := password.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	approved, err := builder.NewAdminBuilder().WithPasswordHash(hash).AsSuperAdmin().BuildDomain()
	require.NoError(t, err)
	pending, err := builder.NewAdminBuilder().WithPasswordHash(hash).AsPending().BuildDomain()
	require.NoError(t, err)

	newAuth := func(store *mockAdminStore, issuer commands.TokenIssuer) commands.AuthCommands {
		return commands.NewAuthCommands(store, issuer, hasher, clock.NewFixedClock(issuedAt), discardLogger())
	}

	t.Run("success", func(t *testing.T) {
		store := new(mockAdminStore)
		store.On("FindByUsername", ctx, approved.Username()).Return(approved, nil)
		store.On("UpdateLastLogin", ctx, approved.ID(), issuedAt).Return(nil)

		actual, err := newAuth(store, stubTokenIssuer{}).Login(ctx, commands.LoginRequest{Username: "manager01", Password: "password123"})
		require.NoError(t, err)

		assert.Equal(t, approved.ID(), actual.AdminID)
		assert.Equal(t, admin.RoleSuperAdmin, actual.Role)
		assert.Equal(t, "token-"+approved.ID().String()+"-SUPER_ADMIN", actual.Token)
		assert.Equal(t, issuedAt.Add(time.Hour), actual.ExpiresAt)
		store.AssertExpectations(t)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		store := new(mockAdminStore)
		store.On("FindByUsername", ctx, approved.Username()).Return(approved, nil)
		store.On("UpdateLastLogin", ctx, approved.ID(), issuedAt).Return(assert.AnError)

		_, err := newAuth(store, stubTokenIssuer{}).Login(ctx, commands.LoginRequest{Username: "manager01", Password: "password123"})
		require.NoError(t, err)
	})

	t.Run("error cases", func(t *testing.T) {
		tests := []struct {
			name    string
			req     commands.LoginRequest
			found   *admin.Admin
			findErr error
			issuer  stubTokenIssuer
			wantErr error
		}{
			{
				name:    "malformed username",
				req:     commands.LoginRequest{Username: "x", Password: "password123"},
				wantErr: commands.ErrInvalidCredentials,
			},
			{
				name:    "unknown username",
				req:     commands.LoginRequest{Username: "ghost01", Password: "password123"},
				findErr: infra.WrapRepoErr("admin not found", nil, infra.KindNotFound),
				wantErr: commands.ErrInvalidCredentials,
			},
			{
				name:    "wrong password",
				req:     commands.LoginRequest{Username: "manager01", Password: "password124"},
				found:   approved,
				wantErr: commands.ErrInvalidCredentials,
			},
			{
				name:    "pending approval",
				req:     commands.LoginRequest{Username: "manager01", Password: "password123"},
				found:   pending,
				wantErr: commands.ErrAdminNotApproved,
			},
			{
				name:    "database failure",
				req:     commands.LoginRequest{Username: "manager01", Password: "password123"},
				findErr: infra.WrapRepoErr("failed", assert.AnError),
				wantErr: commands.ErrAuthenticationFailed,
			},
			{
				name:    "token signing failure",
				req:     commands.LoginRequest{Username: "manager01", Password: "password123"},
				found:   approved,
				issuer:  stubTokenIssuer{err: assert.AnError},
				wantErr: commands.ErrTokenGeneration,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := new(mockAdminStore)
				store.On("FindByUsername", ctx, mock.Anything).Return(tt.found, tt.findErr).Maybe()

				actual, err := newAuth(store, tt.issuer).Login(ctx, tt.req)
				require.Nil(t, actual)
				require.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				store.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}
