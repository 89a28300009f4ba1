package repository

import (
	"fmt"

	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

// constraintMessages holds the client-facing wording for integrity
// violations of one table.
type constraintMessages struct {
	duplicate  string
	missingRef string
}

// translateWriteError turns a constraint violation from an insert or update
// into a conflict or validation AppError. Anything else is wrapped as is.
func translateWriteError(err error, action string, msgs constraintMessages) error {
	switch errors.ClassifyConstraint(err) {
	case errors.ConstraintUnique:
		return errors.NewConflictError(msgs.duplicate)
	case errors.ConstraintForeignKey:
		return errors.NewValidationError(msgs.missingRef)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// translateDeleteError reports a row that other rows still reference as a conflict.
func translateDeleteError(err error, action, resource string) error {
	if errors.IsForeignKeyError(err) {
		return errors.NewConflictError(resource+" is still referenced by other records")
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
