package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Codes:      []string{"USER_NOT_FOUND"},
	StatusCode: http.StatusNotFound,
}
