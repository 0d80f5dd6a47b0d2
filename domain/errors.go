package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a constructor or method precondition is violated
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument wraps ErrInvalidArgument with a human-readable description
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
