package errors

import (
	stderrors "errors"
	"net/http"
)

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenMissing       ErrorType = "token_missing"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError is an AppError that may also be a security event, such as a
// failed login or a tampered token.
type AuthError struct {
	*AppError
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError is returned for unknown users, wrong passwords
// and disabled accounts alike.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "invalid username or password",
			Code:    http.StatusUnauthorized,
		},
		SecurityEvent: true,
	}
}

func NewTokenMissingError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenMissing,
			Message: "missing authorization token",
			Code:    http.StatusUnauthorized,
		},
	}
}

func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "invalid or expired token",
			Code:    http.StatusUnauthorized,
			Details: "please login again",
		},
		SecurityEvent: true,
	}
}

// GetAuthError extracts the *AuthError from err, or nil.
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// IsSecurityEvent reports whether err should be logged as a security event.
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
