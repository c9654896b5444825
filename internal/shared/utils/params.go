package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/shared/errors"
)

// ParseIDParam parses a positive integer path parameter. entityName is used
// in the error message.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(n), nil
}

// ParseOptionalID parses raw as a positive id. Empty, malformed and zero
// values yield nil.
func ParseOptionalID(raw string) *uint {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}
