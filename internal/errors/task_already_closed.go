package errors

import "net/http"

var ErrTaskAlreadyClosed = &Exception{
	Codes:      []string{"TASK_ALREADY_CLOSED"},
	StatusCode: http.StatusBadRequest,
}
