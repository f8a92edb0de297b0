package wordcount

import (
	"errors"
	"fmt"
)

// Sentinel errors for word counting operations.
var (
	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInvalidConfig indicates a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedConfig indicates the config file type is not recognised.
	ErrUnsupportedConfig = errors.New("unsupported config format")

	// ErrUnknownFormat indicates an unknown report format.
	ErrUnknownFormat = errors.New("unknown report format")
)

// Error wraps a failure with the operation and file it relates to.
type Error struct {
	Op   string // Operation that failed ("read", "load config", "watch")
	Path string // File involved, if any
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the input file is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInputNotFound)
}

// IsConfigError reports whether err came from loading or validating config.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrUnsupportedConfig) ||
		errors.Is(err, ErrUnknownFormat)
}
