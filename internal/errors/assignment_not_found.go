package errors

import "net/http"

var ErrAssignmentNotFound = &Exception{
	Codes:      []string{"ASSIGNMENT_NOT_FOUND"},
	StatusCode: http.StatusNotFound,
}
