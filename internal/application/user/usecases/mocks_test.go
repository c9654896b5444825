package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ListFunc             func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListAssignable(context.Context) ([]*user.User, error) {
	return nil, nil
}

// fakeHasher stores passwords as "hashed:<cost>:<password>".
type fakeHasher struct {
	cost    int
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return fmt.Sprintf("hashed:%d:%s", h.cost, password), nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	parts := strings.SplitN(hash, ":", 3)
	if len(parts) != 3 || parts[2] != password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func (h *fakeHasher) NeedsRehash(hash string) bool {
	return !strings.HasPrefix(hash, fmt.Sprintf("hashed:%d:", h.cost))
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username string, role authorization.UserRole) (string, time.Time, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username string, role authorization.UserRole) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role)
	}
	return "token-" + username, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), nil
}
