package dto

import (
	"time"

	"github.com/synerjet/bendesk/internal/domain/user"
)

type UserDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Role        string    `json:"profile"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=80"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"profile" binding:"required,oneof=Administrador Suporte Usuário"`
	FirstName string `json:"first_name" binding:"max=80"`
	LastName  string `json:"last_name" binding:"max=80"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// UpdateUserRequest edits the profile. An empty password keeps the current one.
type UpdateUserRequest struct {
	Role      string `json:"profile" binding:"required,oneof=Administrador Suporte Usuário"`
	FirstName string `json:"first_name" binding:"max=80"`
	LastName  string `json:"last_name" binding:"max=80"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User      UserDTO   `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		Role:        u.Role().String(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		IsActive:    u.IsActive(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func ToUserDTOList(users []*user.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}
