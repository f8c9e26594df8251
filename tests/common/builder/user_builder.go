//go:build unit || e2e

package builder

import (
	domuser "storefront/internal/domain/user"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	Role         domuser.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Jamie Doe",
		Email:        "jamie@example.com",
		Password:     "password123",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		Role:         domuser.RoleUser,
	}
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(b.Name, email, b.PasswordHash, b.Role), nil
}

func (b *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role.String(),
	}
}

func (b *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Role:  b.Role.String(),
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildVerifyOTPRequestDTO(code string) reqdto.VerifyOTPRequest {
	return reqdto.VerifyOTPRequest{
		Email:    b.Email,
		OTP:      code,
		Password: b.Password,
		Name:     b.Name,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = domuser.RoleAdmin
	return b
}
