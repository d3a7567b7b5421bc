// Package httputil translates domain errors and response bodies to HTTP.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "provenia/pkg/domain-errors"
)

var codeStatus = map[dErrors.Code]int{
	dErrors.CodeInvalidInput:       http.StatusBadRequest,
	dErrors.CodeValidation:         http.StatusUnprocessableEntity,
	dErrors.CodeNotFound:           http.StatusNotFound,
	dErrors.CodeForbidden:          http.StatusForbidden,
	dErrors.CodeUnauthorized:       http.StatusUnauthorized,
	dErrors.CodeConflict:           http.StatusConflict,
	dErrors.CodeUnavailable:        http.StatusServiceUnavailable,
	dErrors.CodeInvariantViolation: http.StatusInternalServerError,
	dErrors.CodeInternal:           http.StatusInternalServerError,
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and writes the standard
// error envelope. Server-side failures keep their description out of the
// response body.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := codeStatus[code]
	if !ok {
		code = dErrors.CodeInternal
		status = http.StatusInternalServerError
	}

	body := errorBody{Error: string(code)}
	if status < http.StatusInternalServerError {
		var derr *dErrors.Error
		if errors.As(err, &derr) {
			body.ErrorDescription = derr.Message
		} else {
			body.ErrorDescription = err.Error()
		}
	}
	WriteJSON(w, status, body)
}
