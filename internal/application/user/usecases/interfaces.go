package usecases

import (
	"time"

	"github.com/synerjet/bendesk/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
	NeedsRehash(hash string) bool
}

type TokenIssuer interface {
	Generate(userID uint, username string, role authorization.UserRole) (string, time.Time, error)
}
