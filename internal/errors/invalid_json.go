package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Codes:      []string{"INVALID_JSON"},
	StatusCode: http.StatusBadRequest,
}
