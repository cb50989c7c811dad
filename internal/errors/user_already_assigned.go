package errors

import "net/http"

// ErrUserAlreadyAssigned travels with 202, not 409. Existing clients depend
// on the status code, so it stays exactly as-is.
var ErrUserAlreadyAssigned = &Exception{
	Codes:      []string{"USER_ALREADY_ASSIGNED"},
	StatusCode: http.StatusAccepted,
}
