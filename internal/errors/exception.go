package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Exception is a business-rule or boundary failure carrying the error codes
// surfaced to clients and the HTTP status they travel with.
type Exception struct {
	Codes      []string
	StatusCode int
}

func (e *Exception) Error() string {
	return strings.Join(e.Codes, ", ")
}

// Validation aggregates per-field validation codes into a single 400 response.
func Validation(codes ...string) *Exception {
	return &Exception{
		Codes:      codes,
		StatusCode: http.StatusBadRequest,
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusBadRequest
}

func Codes(err error) []string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Codes
	}
	return []string{"GENERIC_ERROR"}
}
