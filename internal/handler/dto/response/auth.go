package response

import (
	"pos-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	OperatorID  uuid.UUID `json:"operatorId"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.AccessToken,
		OperatorID:  result.OperatorID,
		Username:    result.Username,
		Role:        result.Role,
	}
}
