package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/biztime"
)

const issuer = "bendesk"

// Claims identify the signed-in staff or requester account.
type Claims struct {
	UserID   uint                   `json:"uid"`
	Username string                 `json:"username"`
	Role     authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// Generate signs a session token and returns it with its expiry.
func (s *JWTService) Generate(userID uint, username string, role authorization.UserRole) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(s.ttl)

	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, exp, nil
}

var ErrInvalidToken = errors.New("invalid token")

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ShouldRefresh reports whether less than a quarter of the lifetime remains.
func (s *JWTService) ShouldRefresh(claims *Claims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	return biztime.NowUTC().Add(s.ttl / 4).After(claims.ExpiresAt.Time)
}

// TTL returns the configured session lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}
