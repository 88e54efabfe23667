// Package errs defines the error kinds shared by the engine and game packages.
// Callers test for a kind with errors.Is; the helpers below wrap a sentinel
// with a formatted detail message.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks an invalid ship definition or parameter set.
	// It is raised at setup and load time only.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidOperation marks a request that names something that does not exist,
	// such as an unknown system, room or door.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrUnsupported marks a code path the simulation does not implement yet.
	ErrUnsupported = errors.New("not supported")
)

// Configurationf returns an ErrConfiguration carrying a formatted detail.
func Configurationf(format string, args ...any) error {
	return wrap(ErrConfiguration, format, args...)
}

// InvalidOperationf returns an ErrInvalidOperation carrying a formatted detail.
func InvalidOperationf(format string, args ...any) error {
	return wrap(ErrInvalidOperation, format, args...)
}

// Unsupportedf returns an ErrUnsupported carrying a formatted detail.
func Unsupportedf(format string, args ...any) error {
	return wrap(ErrUnsupported, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
