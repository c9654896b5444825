package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/synerjet/bendesk/internal/domain/user/valueobjects"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

// User is a staff or requester account of the helpdesk.
type User struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.UserRole
	firstName    string
	lastName     string
	email        string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// Profile carries the editable fields of a user.
type Profile struct {
	Role      authorization.UserRole
	FirstName string
	LastName  string
	Email     string
}

// NewUser creates an active user. passwordHash must already be hashed.
func NewUser(username, passwordHash string, profile Profile) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password is required")
	}

	u := &User{
		username:     username,
		passwordHash: passwordHash,
		isActive:     true,
	}
	if err := u.applyProfile(profile); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u.createdAt = now
	u.updatedAt = now
	return u, nil
}

func ReconstructUser(
	id uint,
	username, passwordHash string,
	role authorization.UserRole,
	firstName, lastName, email string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         authorization.ParseUserRole(string(role)),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) applyProfile(p Profile) error {
	email, err := vo.NormalizeEmail(p.Email)
	if err != nil {
		return err
	}
	u.role = authorization.ParseUserRole(string(p.Role))
	u.firstName = strings.TrimSpace(p.FirstName)
	u.lastName = strings.TrimSpace(p.LastName)
	u.email = email
	return nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) FirstName() string            { return u.firstName }
func (u *User) LastName() string             { return u.lastName }
func (u *User) Email() string                { return u.email }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) DisplayName() string {
	return vo.DisplayName(u.firstName, u.lastName, u.username)
}

// IsAssignable reports whether tickets can be assigned to the user.
func (u *User) IsAssignable() bool {
	return u.isActive && u.role.IsStaff()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(p Profile) error {
	if err := u.applyProfile(p); err != nil {
		return err
	}
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now().UTC()
	return nil
}

// ToggleActive flips the active flag and returns the new value.
func (u *User) ToggleActive() bool {
	u.isActive = !u.isActive
	u.updatedAt = time.Now().UTC()
	return u.isActive
}
