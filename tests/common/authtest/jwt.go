//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, adminID uuid.UUID, role admin.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(adminID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, adminID uuid.UUID, role admin.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(adminID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
