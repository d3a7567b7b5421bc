// Package dErrors provides coded domain errors. Services return these so
// transport layers can translate codes to HTTP statuses without inspecting
// error strings, and so callers can branch on intent rather than wording.
package dErrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and caller branching.
type Code string

const (
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation"
	CodeInvariantViolation Code = "invariant_violation"
	CodeNotFound           Code = "not_found"
	CodeForbidden          Code = "forbidden"
	CodeUnauthorized       Code = "unauthorized"
	CodeConflict           Code = "conflict"
	CodeUnavailable        Code = "unavailable"
	CodeInternal           Code = "internal"
)

// Error is a coded domain error. It may wrap an underlying cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. A nil err returns nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		if err == nil {
			break
		}
	}
	return false
}

// CodeOf returns the outermost code carried by err, or CodeInternal if none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
