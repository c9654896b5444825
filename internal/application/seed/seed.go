// Package seed loads initial users and asset types from a YAML file.
package seed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// File is the document read by Parse.
//
//	users:
//	  - username: admin
//	    password: change-me
//	    role: Administrador
//	    email: ti@example.com
//	asset_types: [Notebook, Monitor]
type File struct {
	Users      []UserEntry `yaml:"users"`
	AssetTypes []string    `yaml:"asset_types"`
}

type UserEntry struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
}

type Result struct {
	UsersCreated      int
	UsersUpdated      int
	AssetTypesCreated int
}

type hasher interface {
	Hash(password string) (string, error)
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

type Loader struct {
	users      user.Repository
	assetTypes asset.AssetTypeRepository
	hasher     hasher
	logger     logger.Interface
}

func NewLoader(users user.Repository, assetTypes asset.AssetTypeRepository, h hasher, log logger.Interface) *Loader {
	return &Loader{users: users, assetTypes: assetTypes, hasher: h, logger: log}
}

// Apply upserts users by username and creates missing asset types by name
// (case-insensitive). Running it twice changes nothing but password hashes.
func (l *Loader) Apply(ctx context.Context, f *File) (*Result, error) {
	res := &Result{}

	for i, entry := range f.Users {
		created, err := l.upsertUser(ctx, entry)
		if err != nil {
			return res, fmt.Errorf("users[%d]: %w", i, err)
		}
		if created {
			res.UsersCreated++
		} else {
			res.UsersUpdated++
		}
	}

	existing, err := l.assetTypes.List(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list asset types: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, t := range existing {
		known[strings.ToLower(t.Name())] = true
	}
	for _, name := range f.AssetTypes {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || known[key] {
			continue
		}
		t, err := asset.NewAssetType(name)
		if err != nil {
			return res, fmt.Errorf("asset type %q: %w", name, err)
		}
		if err := l.assetTypes.Create(ctx, t); err != nil {
			return res, fmt.Errorf("failed to create asset type %q: %w", name, err)
		}
		known[key] = true
		res.AssetTypesCreated++
	}

	l.logger.Infow("seed applied",
		"users_created", res.UsersCreated,
		"users_updated", res.UsersUpdated,
		"asset_types_created", res.AssetTypesCreated,
	)
	return res, nil
}

func (l *Loader) upsertUser(ctx context.Context, e UserEntry) (bool, error) {
	if strings.TrimSpace(e.Password) == "" {
		return false, fmt.Errorf("password is required for %q", e.Username)
	}
	hash, err := l.hasher.Hash(e.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	profile := user.Profile{
		Role:      authorization.ParseUserRole(e.Role),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}

	current, err := l.users.GetByUsername(ctx, strings.TrimSpace(e.Username))
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if current == nil {
		u, err := user.NewUser(e.Username, hash, profile)
		if err != nil {
			return false, err
		}
		if err := l.users.Create(ctx, u); err != nil {
			return false, fmt.Errorf("failed to create user: %w", err)
		}
		return true, nil
	}

	if err := current.UpdateProfile(profile); err != nil {
		return false, err
	}
	if err := current.ChangePassword(hash); err != nil {
		return false, err
	}
	if err := l.users.Update(ctx, current); err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	return false, nil
}
