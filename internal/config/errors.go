package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidServerConfigs indicates unusable HTTP server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
