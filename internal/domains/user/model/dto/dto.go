package dto

import (
	"github.com/google/uuid"

	"rri/internal/domains/user/model"
	"rri/shared/constant"
	"rri/shared/timezone"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin staff guest"`
}

func (c *CreateUserRequest) ToModel(passwordHash string) model.User {
	role := constant.RoleStaff
	if c.Role != "" {
		role = c.Role
	}

	return model.User{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    timezone.Now(),
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Role = m.Role
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateTimeFormat)
}

type UsersOverviewResponse struct {
	Users []UserResponse `json:"users"`
	Stats model.Stats    `json:"stats"`
}
