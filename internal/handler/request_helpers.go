package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/PluginKit_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written and the handler should return.
//
//	var req CompareRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Compare item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logFromRequest(r)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(LogMsgValidateFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam returns a required query parameter. If it is missing the
// response has already been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logFromRequest(r).Warn(fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns a query parameter or defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}

func logFromRequest(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context()).With(logger.AttrKeyComponent, "handler")
}
