package usecases

import (
	"context"
	"strings"

	"github.com/synerjet/bendesk/internal/application/user/dto"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(cmd.Username)
	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	// Unknown users, wrong passwords and disabled accounts share one message.
	if u == nil || uc.hasher.Verify(cmd.Password, u.PasswordHash()) != nil {
		uc.logger.Warnw("login failed", "username", username)
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		uc.logger.Warnw("login attempt on disabled account", "username", username)
		return nil, errors.NewInvalidCredentialsError()
	}

	if uc.hasher.NeedsRehash(u.PasswordHash()) {
		uc.rehash(ctx, u, cmd.Password)
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &dto.LoginResponse{User: dto.ToUserDTO(u), Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *LoginUseCase) rehash(ctx context.Context, u *user.User, password string) {
	hash, err := uc.hasher.Hash(password)
	if err == nil {
		err = u.ChangePassword(hash)
	}
	if err == nil {
		err = uc.userRepo.Update(ctx, u)
	}
	if err != nil {
		uc.logger.Warnw("failed to upgrade password hash", "user_id", u.ID(), "error", err)
	}
}
