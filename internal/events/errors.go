package events

import (
	"fmt"

	"marketplace-analytics/internal/shared/svcerrors"
)

// UserEvent parse/validation errors
const (
	codeMalformedPayload = "EVT_1000"
	codeValidationFailed = "EVT_1001"
	codeUnknownAction    = "EVT_1002"
)

// errMalformedPayload returns an error when the message body is not valid JSON.
func errMalformedPayload(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedPayload, "malformed event payload", cause)
}

// errValidationFailed returns an error when the decoded event fails field validation.
func errValidationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, "event validation failed", cause)
}

// errUnknownAction returns an error when the action is outside the closed enumeration.
func errUnknownAction(action string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownAction, fmt.Sprintf("unknown action %q", action), nil)
}
