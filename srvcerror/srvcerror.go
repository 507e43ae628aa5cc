package srvcerror

import "net/http"

// Error carries a stable machine-readable code, a message safe to
// show to the dashboard user (German), and private debug context for
// the logs.
type Error struct {
	code      string
	msgToUser string // public
	debugErr  error  // private, never sent to clients

	httpStatus int // optional, for HTTP responses
}

func New(code string, msgToUser string) *Error {
	return &Error{
		code:      code,
		msgToUser: msgToUser,
	}
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) Code() string {
	return e.code
}

func (e *Error) SetDebug(err error) *Error {
	e.debugErr = err
	return e
}

func (e *Error) Debug() error {
	return e.debugErr
}

func (e *Error) Unwrap() error {
	return e.debugErr
}

func (e *Error) SetHttpStatusCode(status int) *Error {
	e.httpStatus = status
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"interner Serverfehler",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
