package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/infra"
	"facility-parking/internal/pkg/clock"
	"facility-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAdminNotApproved     = errs.New("admin not approved")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginRequest struct {
	Username string
	Password string
}

type LoginResult struct {
	AdminID   uuid.UUID
	Username  string
	Name      string
	Role      admin.Role
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	store    AdminCredentialStore
	tokens   TokenIssuer
	password PasswordVerifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAuthCommands(
	store AdminCredentialStore,
	tokens TokenIssuer,
	password PasswordVerifier,
	clk clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		store:    store,
		tokens:   tokens,
		password: password,
		clock:    clk,
		logger:   logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := admin.NewCredentials(req.Username, req.Password)
	if err != nil {
		// malformed input gets the same answer as a wrong password
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	account, err := a.store.FindByUsername(ctx, credentials.Username())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.password.Compare(account.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := account.EnsureCanLogin(); err != nil {
		return nil, errs.Mark(err, ErrAdminNotApproved)
	}

	token, expiresAt, err := a.tokens.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.store.UpdateLastLogin(ctx, account.ID(), a.clock.Now()); err != nil {
		// login already succeeded; a stale last_login is acceptable
		a.logger.WarnContext(ctx, "failed to update last login", "admin_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		AdminID:   account.ID(),
		Username:  account.Username().Value(),
		Name:      account.Name(),
		Role:      account.Role(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
