package errors

import "net/http"

// HTTPError is an error that carries an application error code and a client-safe message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError creates an HTTPError. Codes in the HTTP status range are reused as the status code;
// anything else is reported as 400.
func NewHTTPError(code int, msg string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 400 && code < 600 {
		status = code
	}
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
