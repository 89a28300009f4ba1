package usecases

import (
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// storeError passes AppErrors through and hides anything else behind an
// internal error after logging it.
func storeError(log logger.Interface, err error, message string) error {
	if appErr := errors.GetAppError(err); appErr != nil {
		log.Warnw(message, "error", appErr)
		return appErr
	}
	log.Errorw(message, "error", err)
	return errors.NewInternalError(message)
}
