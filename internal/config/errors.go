package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
// Every specific error is reported wrapped in ErrInvalidConfig.
var (
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingTokenSignKey means no token signing key was configured.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidTokenDuration means the token lifetime is zero or negative.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrInvalidPasswordHashCost means the bcrypt cost is out of range.
	ErrInvalidPasswordHashCost = errors.New("password hash cost out of range")
	// ErrUnsupportedDBDriver means the driver is neither pgx nor sqlite3.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrMissingDSN means no database connection string was configured.
	ErrMissingDSN = errors.New("database DSN is required")
	// ErrMissingHTTPAddress means the HTTP listen address is empty.
	ErrMissingHTTPAddress = errors.New("http address is required")
	// ErrInvalidTimeout means a configured timeout is negative.
	ErrInvalidTimeout = errors.New("timeouts must not be negative")
)
