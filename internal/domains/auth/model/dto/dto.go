package dto

import (
	"github.com/google/uuid"

	userModel "rri/internal/domains/user/model"
	"rri/shared/constant"
	"rri/shared/timezone"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) ToUserModel(passwordHash string) userModel.User {
	return userModel.User{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Role:         constant.RoleGuest,
		CreatedAt:    timezone.Now(),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the public identity slice returned alongside a token.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

func (a *AuthResponse) FromUserModel(token string, user userModel.User) {
	a.Token = token
	a.User = AuthUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
