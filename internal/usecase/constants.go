package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	// This prevents long-running transactions from blocking tables.
	DefaultTransactionTimeout = 10 * time.Second

	// StatementCacheTTL is how long a rendered statement snapshot stays cached.
	// The consuming UI polls every second or two, so a short TTL keeps the
	// statement fresh while absorbing repeat reads.
	StatementCacheTTL = 2 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
