package user

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/user/dto"
	"github.com/synerjet/bendesk/internal/application/user/usecases"
	domainUser "github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// Service is the application service that orchestrates the account use cases.
type Service struct {
	loginUC      *usecases.LoginUseCase
	createUserUC *usecases.CreateUserUseCase
	updateUserUC *usecases.UpdateUserUseCase
	toggleUserUC *usecases.ToggleUserStatusUseCase
	deleteUserUC *usecases.DeleteUserUseCase
	getUserUC    *usecases.GetUserUseCase
	listUsersUC  *usecases.ListUsersUseCase
	userRepo     domainUser.Repository
	logger       logger.Interface
}

func NewService(
	userRepo domainUser.Repository,
	hasher usecases.PasswordHasher,
	tokens usecases.TokenIssuer,
	logger logger.Interface,
) *Service {
	return &Service{
		loginUC:      usecases.NewLoginUseCase(userRepo, hasher, tokens, logger),
		createUserUC: usecases.NewCreateUserUseCase(userRepo, hasher, logger),
		updateUserUC: usecases.NewUpdateUserUseCase(userRepo, hasher, logger),
		toggleUserUC: usecases.NewToggleUserStatusUseCase(userRepo, logger),
		deleteUserUC: usecases.NewDeleteUserUseCase(userRepo, logger),
		getUserUC:    usecases.NewGetUserUseCase(userRepo, logger),
		listUsersUC:  usecases.NewListUsersUseCase(userRepo, logger),
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginUC.Execute(ctx, usecases.LoginCommand{Username: req.Username, Password: req.Password})
}

func (s *Service) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	return s.createUserUC.Execute(ctx, req)
}

func (s *Service) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	return s.updateUserUC.Execute(ctx, usecases.UpdateUserCommand{ID: id, Request: req})
}

// ToggleUserStatus enables or disables another user's account.
func (s *Service) ToggleUserStatus(ctx context.Context, id, actorID uint) (*dto.UserDTO, error) {
	return s.toggleUserUC.Execute(ctx, usecases.AccountCommand{ID: id, ActorID: actorID})
}

func (s *Service) DeleteUser(ctx context.Context, id, actorID uint) error {
	return s.deleteUserUC.Execute(ctx, usecases.AccountCommand{ID: id, ActorID: actorID})
}

func (s *Service) GetUserByID(ctx context.Context, id uint) (*dto.UserDTO, error) {
	return s.getUserUC.Execute(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	return s.listUsersUC.Execute(ctx, query)
}

// ListAssignable returns the staff accounts tickets can be assigned to.
func (s *Service) ListAssignable(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.ListAssignable(ctx)
	if err != nil {
		s.logger.Errorw("failed to list assignable users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return dto.ToUserDTOList(users), nil
}
