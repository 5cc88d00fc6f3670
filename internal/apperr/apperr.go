// Package apperr classifies business-rule failures so handlers can map any
// service error to an HTTP status without inspecting message text.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Unauthenticated(msg string) error { return &Error{http.StatusUnauthorized, msg} }
func NotFound(msg string) error        { return &Error{http.StatusNotFound, msg} }
func Conflict(msg string) error        { return &Error{http.StatusConflict, msg} }
func Invalid(msg string) error         { return &Error{http.StatusBadRequest, msg} }
func Forbidden(msg string) error       { return &Error{http.StatusForbidden, msg} }

// Logical marks an internally inconsistent payload, e.g. has_joined_team set
// without a team id. Kept distinct from both NotFound and Conflict.
func Logical(msg string) error { return &Error{http.StatusNotAcceptable, msg} }

// Status returns the HTTP status carried by err, or 500 for anything that is
// not an apperr value.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
