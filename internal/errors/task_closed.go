package errors

import "net/http"

// ErrTaskClosed rejects updates to a task that already reached its terminal
// state. Closing itself is reported through ErrTaskAlreadyClosed.
var ErrTaskClosed = &Exception{
	Codes:      []string{"TASK_CLOSED"},
	StatusCode: http.StatusBadRequest,
}
