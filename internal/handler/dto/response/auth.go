package response

import (
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	Message string `json:"message"`
}

type AuthUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	User AuthUserResponse `json:"user"`
}

func NewLoginResponse(result *commands.AuthResult) LoginResponse {
	return LoginResponse{
		User: AuthUserResponse{
			ID:    result.UserID,
			Name:  result.Name,
			Email: result.Email,
			Role:  result.Role.String(),
		},
	}
}
