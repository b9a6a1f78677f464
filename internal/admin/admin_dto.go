package admin

import "encoding/json"

// Password length is capped at bcrypt's 72-byte input limit.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=72"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,max=72"`
}

// UnmarshalJSON also accepts the camelCase currentPassword/newPassword keys
// older clients send. Snake case wins when both are present.
func (r *ChangePasswordRequest) UnmarshalJSON(data []byte) error {
	type plain ChangePasswordRequest
	var aux struct {
		plain
		LegacyCurrentPassword string `json:"currentPassword"`
		LegacyNewPassword     string `json:"newPassword"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = ChangePasswordRequest(aux.plain)
	if r.CurrentPassword == "" {
		r.CurrentPassword = aux.LegacyCurrentPassword
	}
	if r.NewPassword == "" {
		r.NewPassword = aux.LegacyNewPassword
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       AdminResponse `json:"admin"`
}

func mapToResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
