//go:build unit || e2e

package builder

import (
	reqdto "facility-parking/internal/handler/dto/request"
	"facility-parking/internal/usecase/commands"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "manager01",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCommand() commands.LoginRequest {
	return commands.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
