package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Codes:      []string{"INVALID_CREDENTIALS"},
	StatusCode: http.StatusBadRequest,
}
