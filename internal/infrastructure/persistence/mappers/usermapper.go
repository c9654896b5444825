package mappers

import (
	"fmt"

	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(m *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Username:  u.Username(),
		Password:  u.PasswordHash(),
		Profile:   u.Role().String(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		IsActive:  u.IsActive(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	u, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.Password,
		authorization.UserRole(model.Profile),
		model.FirstName,
		model.LastName,
		model.Email,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}
