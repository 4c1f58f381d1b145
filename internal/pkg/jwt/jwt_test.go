//go:build unit

package jwt

import (
	"testing"
	"time"

	"facility-parking/internal/domain/admin"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	issued := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := NewService("secret", time.Hour)
	svc.now = func() time.Time { return issued }

	adminID := uuid.New()
	token, expiresAt, err := svc.GenerateToken(adminID, admin.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), expiresAt)

	t.Run("round trip", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.AdminID)
		assert.Equal(t, "SUPER_ADMIN", claims.Role)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewService("secret", time.Hour)
		later.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err := later.ValidateToken(token)
		require.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other", time.Hour)
		other.now = svc.now
		_, err := other.ValidateToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		none := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{AdminID: adminID})
		raw, err := none.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
