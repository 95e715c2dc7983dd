package load

import (
	"errors"
	"strings"
)

// ErrConnect indicates that the database could not be reached or inspected.
// It is fatal for the whole run.
var ErrConnect = errors.New("exposedgen: database connection failed")

// ConnectError describes a driver or connection failure.
type ConnectError struct {
	Driver  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConnectError) Error() string {
	var b strings.Builder
	b.WriteString("exposedgen: connection error")
	if e.Driver != "" {
		b.WriteString(" (driver: ")
		b.WriteString(e.Driver)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ConnectError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ConnectError.
func (e *ConnectError) Is(target error) bool {
	return target == ErrConnect
}

// IsConnectError reports whether the error is a ConnectError.
func IsConnectError(err error) bool {
	var connErr *ConnectError
	return errors.As(err, &connErr)
}
