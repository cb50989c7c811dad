package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Codes:      []string{"TASK_NOT_FOUND"},
	StatusCode: http.StatusNotFound,
}
