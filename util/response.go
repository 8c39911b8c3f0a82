package util

import "ClinicDesk/validation"

type MessageBody struct {
	Message    string                  `json:"message"`
	RedirectTo string                  `json:"redirectTo,omitempty"`
	Details    []validation.FieldError `json:"details,omitempty"`
}

func MessageResponse(message string) MessageBody {
	return MessageBody{Message: message}
}

func RedirectResponse(message, redirectTo string) MessageBody {
	return MessageBody{Message: message, RedirectTo: redirectTo}
}

/*
* Only AppError messages are shown to clients
* Anything else collapses into the generic server error
 */
func FailedResponse(err error) MessageBody {
	appErr, ok := AsAppError(err)
	if !ok {
		return MessageBody{Message: SERVER_ERROR}
	}
	return MessageBody{Message: appErr.Message, Details: appErr.Details}
}
