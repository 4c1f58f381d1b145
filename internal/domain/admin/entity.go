package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotApproved = errors.New("admin account pending approval")

// Admin is a back-office account. New registrations start unapproved until a
// super admin approves them.
type Admin struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	name         string
	role         Role
	approved     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmin(username Username, passwordHash, name string, role Role, now time.Time) (*Admin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Admin{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAdmin(
	id uuid.UUID,
	username Username,
	passwordHash, name string,
	role Role,
	approved bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *Admin {
	return &Admin{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		approved:     approved,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Admin) Approve(now time.Time) {
	a.approved = true
	a.updatedAt = now
}

func (a *Admin) EnsureCanLogin() error {
	if !a.approved {
		return ErrNotApproved
	}
	return nil
}

func (a *Admin) IsSuperAdmin() bool {
	return a.role == RoleSuperAdmin
}

func (a *Admin) ID() uuid.UUID         { return a.id }
func (a *Admin) Username() Username    { return a.username }
func (a *Admin) PasswordHash() string  { return a.passwordHash }
func (a *Admin) Name() string          { return a.name }
func (a *Admin) Role() Role            { return a.role }
func (a *Admin) Approved() bool        { return a.approved }
func (a *Admin) LastLogin() *time.Time { return a.lastLogin }
func (a *Admin) CreatedAt() time.Time  { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time  { return a.updatedAt }
