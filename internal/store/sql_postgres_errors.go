package store

import "github.com/jackc/pgerrcode"

// ErrorClassification tells [DB.withRetry] whether a failed statement may
// be run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota

	// Retryable marks failures after which the statement is known to have
	// had no effect.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify marks rolled back transactions and refused connections as
// retryable. A connection lost mid-statement is not, since the statement
// may have committed.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return Retryable
	}
	return NonRetryable
}

// isPostgresUniqueViolation reports whether err carries SQLSTATE 23505.
func isPostgresUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
