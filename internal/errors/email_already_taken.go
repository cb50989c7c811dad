package errors

import "net/http"

var ErrEmailAlreadyTaken = &Exception{
	Codes:      []string{"EMAIL_ALREADY_TAKEN"},
	StatusCode: http.StatusBadRequest,
}
