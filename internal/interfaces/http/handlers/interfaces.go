package handlers

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/user/dto"
	"github.com/synerjet/bendesk/internal/application/user/usecases"
)

// UserService is the part of user.Service the auth and user handlers use.
type UserService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error)
	ToggleUserStatus(ctx context.Context, id, actorID uint) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id, actorID uint) error
	GetUserByID(ctx context.Context, id uint) (*dto.UserDTO, error)
	ListUsers(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

// AvatarSource returns a directory photo and its content type.
type AvatarSource interface {
	Avatar(ctx context.Context, email string) ([]byte, string, error)
}
