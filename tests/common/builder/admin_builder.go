//go:build unit || e2e

package builder

import (
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type AdminBuilder struct {
	Username     string
	PasswordHash string
	Name         string
	Role         string
	Approved     bool
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		Username:     "manager01",
		PasswordHash: "hashed_password",
		Name:         "Parking Manager",
		Role:         string(admin.RoleManager),
		Approved:     true,
	}
}

func (b *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(b)
	return b
}

func (b *AdminBuilder) BuildDomain() (*admin.Admin, error) {
	username, err := admin.NewUsername(b.Username)
	if err != nil {
		return nil, err
	}

	role, err := admin.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	a, err := admin.NewAdmin(username, b.PasswordHash, b.Name, role, fixedNow)
	if err != nil {
		return nil, err
	}
	if b.Approved {
		a.Approve(fixedNow)
	}
	return a, nil
}

func (b *AdminBuilder) BuildReadModel() *queries.AdminView {
	return &queries.AdminView{
		ID:       uuid.New(),
		Username: b.Username,
		Name:     b.Name,
		Role:     b.Role,
		Approved: b.Approved,
	}
}

func (b *AdminBuilder) WithUsername(username string) *AdminBuilder {
	b.Username = username
	return b
}

func (b *AdminBuilder) WithName(name string) *AdminBuilder {
	b.Name = name
	return b
}

func (b *AdminBuilder) WithRole(role string) *AdminBuilder {
	b.Role = role
	return b
}

func (b *AdminBuilder) WithPasswordHash(hash string) *AdminBuilder {
	b.PasswordHash = hash
	return b
}

func (b *AdminBuilder) AsSuperAdmin() *AdminBuilder {
	b.Role = string(admin.RoleSuperAdmin)
	return b
}

func (b *AdminBuilder) AsPending() *AdminBuilder {
	b.Approved = false
	return b
}
