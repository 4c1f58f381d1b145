package commands

import (
	"context"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/domain/receipt"

	"github.com/google/uuid"
)

// Write-side ports. They never return read-side views (CQRS separation).

type ReceiptWriter interface {
	Create(ctx context.Context, rc *receipt.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdminCredentialStore interface {
	FindByUsername(ctx context.Context, username admin.Username) (*admin.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type TokenIssuer interface {
	GenerateToken(adminID uuid.UUID, role admin.Role) (string, time.Time, error)
}

type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}
