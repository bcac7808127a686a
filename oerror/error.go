package oerror

import "fmt"

// Error is the error type returned by lookat packages for invalid input such as malformed settings.
type Error struct {
	Err string
}

// New returns an *Error with a message formatted from the format and arguments passed.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
