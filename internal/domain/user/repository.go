package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	// GetByID and GetByUsername return (nil, nil) when nothing matches.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	// ListAssignable returns active Administrador and Suporte users ordered
	// by username.
	ListAssignable(ctx context.Context) ([]*User, error)
}

type ListFilter struct {
	Page     int
	PageSize int
	Role     string
	Search   string
}
