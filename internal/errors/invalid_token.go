package errors

import "net/http"

var ErrInvalidToken = &Exception{
	Codes:      []string{"INVALID_TOKEN"},
	StatusCode: http.StatusUnauthorized,
}
