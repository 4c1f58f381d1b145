package response

import (
	"time"

	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"
)

type AdminResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	LastLogin *string `json:"last_login,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   string        `json:"expires_at"`
	Admin       AdminResponse `json:"admin"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		ExpiresAt:   r.ExpiresAt.Format(time.RFC3339),
		Admin: AdminResponse{
			ID:       r.AdminID.String(),
			Username: r.Username,
			Name:     r.Name,
			Role:     r.Role.String(),
		},
	}
}

func FromAdminView(v *queries.AdminView) *AdminResponse {
	res := &AdminResponse{
		ID:       v.ID.String(),
		Username: v.Username,
		Name:     v.Name,
		Role:     v.Role,
	}
	if v.LastLogin != nil {
		s := v.LastLogin.Format(time.RFC3339)
		res.LastLogin = &s
	}
	return res
}
