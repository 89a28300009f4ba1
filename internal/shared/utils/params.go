package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

// ParseIDParam parses a positive numeric id from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "locker_id").
// entityName is used in error messages (e.g., "locker", "permission").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewFieldValidationError(constants.ErrMsgValidationFailed, errors.FieldError{
			Field:   paramName,
			Message: fmt.Sprintf("%s ID must be a positive integer", entityName),
		})
	}
	return uint(id), nil
}

// RequireParam returns a non-empty string path parameter.
func RequireParam(c *gin.Context, paramName string) (string, error) {
	v := c.Param(paramName)
	if v == "" {
		return "", errors.NewFieldValidationError(constants.ErrMsgValidationFailed, errors.FieldError{
			Field:   paramName,
			Message: "is required",
		})
	}
	return v, nil
}
