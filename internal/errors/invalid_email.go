package errors

import "net/http"

var ErrInvalidEmail = &Exception{
	Codes:      []string{"INVALID_EMAIL"},
	StatusCode: http.StatusBadRequest,
}
