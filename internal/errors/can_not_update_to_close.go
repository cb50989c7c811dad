package errors

import "net/http"

var ErrCanNotUpdateToClose = &Exception{
	Codes:      []string{"CAN_NOT_UPDATE_TO_CLOSE"},
	StatusCode: http.StatusBadRequest,
}
