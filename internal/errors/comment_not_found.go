package errors

import "net/http"

var ErrCommentNotFound = &Exception{
	Codes:      []string{"COMMENT_NOT_FOUND"},
	StatusCode: http.StatusNotFound,
}
