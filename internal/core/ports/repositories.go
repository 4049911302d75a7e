package ports

import (
	"context"
	"time"

	"mt5-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LedgerRepository defines persistence operations for ledger transactions.
// Methods accepting pgx.Tx run inside a unit of work holding the row lock.
type LedgerRepository interface {
	// Create inserts a new pending transaction. A duplicate tx id yields
	// apperror.ErrDuplicateTransactionID.
	Create(ctx context.Context, tx pgx.Tx, t *domain.LedgerTransaction) error
	GetByID(ctx context.Context, txID string) (*domain.LedgerTransaction, error)
	// GetByIDForUpdate fetches the row under an exclusive lock held for the
	// duration of tx. Returns nil, nil when the row does not exist.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, txID string) (*domain.LedgerTransaction, error)
	// RecordOutcome advances status and stores ticket/retcode/details. Must be
	// called inside the same unit of work that holds the row lock.
	RecordOutcome(ctx context.Context, tx pgx.Tx, txID string, status domain.TransactionStatus, ticket, retcode *string, details []byte) error
	// List fetches transactions for reconciliation, filtered and paginated.
	List(ctx context.Context, params LedgerListParams) ([]domain.LedgerTransaction, int64, error)
}

// LedgerListParams holds filter + pagination for reconciliation queries.
type LedgerListParams struct {
	Login     *uint64
	Direction *domain.Direction
	Status    *domain.TransactionStatus
	Page      int
	PageSize  int
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SessionStore persists the manager cookie store across process invocations,
// keyed by manager identity. Implementations may use Redis, a file, or memory.
type SessionStore interface {
	// Get returns the stored cookie blob, or nil, nil when absent.
	Get(ctx context.Context, managerLogin uint64) ([]byte, error)
	Put(ctx context.Context, managerLogin uint64, blob []byte) error
	Clear(ctx context.Context, managerLogin uint64) error
}

// OutcomeCache caches applied-transaction outcomes so repeat apply calls can
// short-circuit before touching the database. Best effort only.
type OutcomeCache interface {
	// Get returns the cached outcome, or nil, nil when absent.
	Get(ctx context.Context, txID string) ([]byte, error)
	Set(ctx context.Context, txID string, value []byte, ttl time.Duration) error
}
