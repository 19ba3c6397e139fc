package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/PluginKit_Go/internal/domain"
)

// User-facing error messages
const (
	ErrMsgInvalidRequest        = "Invalid request"
	ErrMsgInvalidRequestSummary = "Invalid request. Please check your inputs."
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgInvalidDescriptorError = "Item descriptor could not be parsed"
	ErrMsgUnknownMaterialError   = "Item descriptor names a material the registry does not know"

	ErrMsgUpdateCheckDisabledError = "Update checking is disabled for this plugin"
	ErrMsgUpdateCheckFailedError   = "Could not reach the release API. Please try again later."

	ErrMsgNotReady = "one or more dependencies are not ready"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgValidateFailed  = "Request validation failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgParseRejected   = "Item descriptor rejected"
	LogMsgUpdateCheckDone = "Manual update check finished"
)

// mapServiceErrorToUserMessage converts domain errors to an HTTP status and a
// message that is safe to show to API clients
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrInvalidDescriptor):
		return http.StatusBadRequest, ErrMsgInvalidDescriptorError
	case errors.Is(err, domain.ErrMaterialNotFound):
		return http.StatusUnprocessableEntity, ErrMsgUnknownMaterialError
	case errors.Is(err, domain.ErrUpdateCheckDisabled):
		return http.StatusConflict, ErrMsgUpdateCheckDisabledError
	case errors.Is(err, domain.ErrUpdateCheckFailed):
		return http.StatusBadGateway, ErrMsgUpdateCheckFailedError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs err and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logFromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error(msg, "error", err)
	} else {
		log.Warn(msg, "error", err)
	}
	respondError(w, status, msg)
}
