package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

// Pagination holds parsed skip/limit parameters.
type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination parses skip and limit from the query string.
// skip must be >= 0 and limit >= 1; out-of-range input is a validation error
// rather than being silently replaced. There is no upper bound on limit, so
// consecutive pages always tile the full list.
func ParsePagination(c *gin.Context) (Pagination, error) {
	var fields []errors.FieldError

	skip, err := parseQueryInt(c, "skip", constants.DefaultSkip)
	if err != nil || skip < 0 {
		fields = append(fields, errors.FieldError{Field: "skip", Message: "must be an integer greater than or equal to 0"})
	}

	limit, err := parseQueryInt(c, "limit", constants.DefaultLimit)
	if err != nil || limit < 1 {
		fields = append(fields, errors.FieldError{Field: "limit", Message: "must be an integer greater than or equal to 1"})
	}

	if len(fields) > 0 {
		return Pagination{}, errors.NewFieldValidationError(constants.ErrMsgValidationFailed, fields...)
	}

	return Pagination{Skip: skip, Limit: limit}, nil
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(val)
}
