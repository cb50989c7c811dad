package errors

import "net/http"

var ErrMissingToken = &Exception{
	Codes:      []string{"MISSING_TOKEN"},
	StatusCode: http.StatusUnauthorized,
}
