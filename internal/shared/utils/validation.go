package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

func init() {
	// report json names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindJSON decodes and validates the request body. Every failure is returned
// as a validation AppError listing the offending fields.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return TranslateBindError(err)
	}
	return nil
}

// TranslateBindError converts decoder and validator errors into a validation AppError.
func TranslateBindError(err error) error {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := make([]errors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, errors.FieldError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
		return errors.NewFieldValidationError(constants.ErrMsgValidationFailed, fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return errors.NewFieldValidationError(constants.ErrMsgValidationFailed, errors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
		})
	}

	if stderrors.Is(err, io.EOF) {
		return errors.NewFieldValidationError(constants.ErrMsgValidationFailed, errors.FieldError{
			Field:   "body",
			Message: "request body is required",
		})
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}

	return errors.NewFieldValidationError(constants.ErrMsgValidationFailed, errors.FieldError{
		Field:   "body",
		Message: "malformed JSON body",
	})
}

func fieldErrorMessage(fe validator.FieldError) string {
	param := fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters long", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters long", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", param)
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
