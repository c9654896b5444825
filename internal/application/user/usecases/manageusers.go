package usecases

import (
	"context"
	"strings"

	"github.com/synerjet/bendesk/internal/application/user/dto"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	username := strings.TrimSpace(req.Username)
	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError("username already exists", username)
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, errors.NewValidationError("password is required")
	}
	if !authorization.UserRole(req.Role).IsValid() {
		return nil, errors.NewValidationError("invalid profile", req.Role)
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	u, err := user.NewUser(username, hash, user.Profile{
		Role:      authorization.UserRole(req.Role),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username already exists", username)
		}
		uc.logger.Errorw("failed to create user", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())
	result := dto.ToUserDTO(u)
	return &result, nil
}

type UpdateUserCommand struct {
	ID      uint
	Request dto.UpdateUserRequest
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	u, err := loadUser(ctx, uc.userRepo, cmd.ID, uc.logger)
	if err != nil {
		return nil, err
	}

	req := cmd.Request
	if !authorization.UserRole(req.Role).IsValid() {
		return nil, errors.NewValidationError("invalid profile", req.Role)
	}
	if err := u.UpdateProfile(user.Profile{
		Role:      authorization.UserRole(req.Role),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if req.Password != "" {
		hash, err := uc.hasher.Hash(req.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", u.ID(), "password_changed", req.Password != "")
	result := dto.ToUserDTO(u)
	return &result, nil
}

// AccountCommand targets another account on behalf of the acting user.
type AccountCommand struct {
	ID      uint
	ActorID uint
}

type ToggleUserStatusUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleUserStatusUseCase(userRepo user.Repository, logger logger.Interface) *ToggleUserStatusUseCase {
	return &ToggleUserStatusUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ToggleUserStatusUseCase) Execute(ctx context.Context, cmd AccountCommand) (*dto.UserDTO, error) {
	if cmd.ID == cmd.ActorID {
		return nil, errors.NewValidationError("you cannot deactivate your own account")
	}
	u, err := loadUser(ctx, uc.userRepo, cmd.ID, uc.logger)
	if err != nil {
		return nil, err
	}

	active := u.ToggleActive()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to toggle user", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user status toggled", "user_id", u.ID(), "is_active", active, "actor_id", cmd.ActorID)
	result := dto.ToUserDTO(u)
	return &result, nil
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd AccountCommand) error {
	if cmd.ID == cmd.ActorID {
		return errors.NewValidationError("you cannot delete your own account")
	}
	if _, err := loadUser(ctx, uc.userRepo, cmd.ID, uc.logger); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete user")
	}
	uc.logger.Infow("user deleted", "user_id", cmd.ID, "actor_id", cmd.ActorID)
	return nil
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserDTO, error) {
	u, err := loadUser(ctx, uc.userRepo, id, uc.logger)
	if err != nil {
		return nil, err
	}
	result := dto.ToUserDTO(u)
	return &result, nil
}

type ListUsersQuery struct {
	Role     string
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if query.Role != "" && !authorization.UserRole(query.Role).IsValid() {
		return nil, errors.NewValidationError("invalid profile", query.Role)
	}
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Role:     query.Role,
		Search:   strings.TrimSpace(query.Search),
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return &ListUsersResult{Users: dto.ToUserDTOList(users), Total: total}, nil
}

func loadUser(ctx context.Context, repo user.Repository, id uint, log logger.Interface) (*user.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}
