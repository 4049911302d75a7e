package integration

import (
	"context"
	"sync"

	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Ledger Repo ---

// inMemoryLedgerRepo emulates the row-locking semantics of the PostgreSQL
// repository: GetByIDForUpdate takes a per-id lock that is held until the
// surrounding transaction commits or rolls back. This is what makes the
// concurrency tests meaningful.
type inMemoryLedgerRepo struct {
	mu    sync.Mutex
	rows  map[string]*domain.LedgerTransaction
	locks map[string]*sync.Mutex
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{
		rows:  make(map[string]*domain.LedgerTransaction),
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *inMemoryLedgerRepo) rowLock(txID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[txID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[txID] = l
	}
	return l
}

func (r *inMemoryLedgerRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.LedgerTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rows[t.TxID]; exists {
		return apperror.ErrDuplicateTransactionID()
	}
	cp := *t
	r.rows[t.TxID] = &cp
	return nil
}

func (r *inMemoryLedgerRepo) GetByID(ctx context.Context, txID string) (*domain.LedgerTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[txID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *inMemoryLedgerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, txID string) (*domain.LedgerTransaction, error) {
	lock := r.rowLock(txID)
	lock.Lock()
	if mt, ok := tx.(*memTx); ok {
		mt.onClose(lock.Unlock)
	} else {
		lock.Unlock()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[txID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *inMemoryLedgerRepo) RecordOutcome(ctx context.Context, tx pgx.Tx, txID string, status domain.TransactionStatus, ticket, retcode *string, details []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[txID]
	if !ok {
		return apperror.ErrTransactionNotFound()
	}
	row.Status = status
	row.Ticket = ticket
	row.Retcode = retcode
	row.Details = details
	return nil
}

func (r *inMemoryLedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerTransaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.LedgerTransaction
	for _, row := range r.rows {
		if params.Login != nil && row.Login != *params.Login {
			continue
		}
		if params.Direction != nil && row.Direction != *params.Direction {
			continue
		}
		if params.Status != nil && row.Status != *params.Status {
			continue
		}
		matched = append(matched, *row)
	}

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// --- In-Memory Transactor ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{}, nil
}

// memTx is a pgx.Tx that only tracks row-lock releases; commit and rollback
// both run them exactly once.
type memTx struct {
	mu       sync.Mutex
	closed   bool
	releases []func()
}

func (t *memTx) onClose(f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.releases = append(t.releases, f)
}

func (t *memTx) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	for _, f := range t.releases {
		f()
	}
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) Commit(ctx context.Context) error          { t.close(); return nil }
func (t *memTx) Rollback(ctx context.Context) error        { t.close(); return nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }
