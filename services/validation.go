package services

import (
	"ClinicDesk/util"
	"ClinicDesk/validation"

	"go.uber.org/zap"
)

func rejected(log *zap.Logger, message string, fieldErrors []validation.FieldError) error {
	log.Debug("Request failed validation",
		zap.String("reason", message),
		zap.Strings("fields", validation.Fields(fieldErrors)),
	)
	return util.NewValidationError(message, fieldErrors)
}
