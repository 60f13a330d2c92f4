package cli

import "errors"

var (
	// ErrInvalidInput is returned when a JSON document cannot be decoded into
	// the shape a command expects.
	ErrInvalidInput = errors.New("cli: invalid input")

	// ErrInvalidConfig is returned for configuration values that cannot be
	// decoded or make no sense, such as an unknown log level or a negative
	// indent.
	ErrInvalidConfig = errors.New("cli: invalid config")
)
