package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// LedgerRepo implements ports.LedgerRepository over the ledger_transactions
// table.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `tx_id, login, direction, amount, status, ticket, retcode, details, created_at, updated_at`

// Create inserts a new ledger row within a database transaction. A reused
// transaction id maps to the duplicate-id error rather than a raw constraint
// violation.
func (r *LedgerRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.LedgerTransaction) error {
	query := `INSERT INTO ledger_transactions (tx_id, login, direction, amount, status, ticket, retcode, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.TxID, t.Login, t.Direction, t.Amount, t.Status,
		t.Ticket, t.Retcode, t.Details, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.ErrDuplicateTransactionID()
		}
		return apperror.ErrDatabaseError(fmt.Errorf("insert ledger transaction: %w", err))
	}
	return nil
}

// GetByID fetches a ledger row without locking it.
func (r *LedgerRepo) GetByID(ctx context.Context, txID string) (*domain.LedgerTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_transactions WHERE tx_id = $1`, ledgerColumns)

	return r.scanLedgerRow(r.pool.QueryRow(ctx, query, txID))
}

// GetByIDForUpdate fetches a ledger row holding an exclusive row lock for
// the rest of the surrounding database transaction. Returns (nil, nil) when
// the id is unknown.
func (r *LedgerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, txID string) (*domain.LedgerTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_transactions WHERE tx_id = $1 FOR UPDATE`, ledgerColumns)

	return r.scanLedgerRow(tx.QueryRow(ctx, query, txID))
}

// RecordOutcome writes the terminal or failed result of one apply attempt.
func (r *LedgerRepo) RecordOutcome(ctx context.Context, tx pgx.Tx, txID string, status domain.TransactionStatus, ticket, retcode *string, details []byte) error {
	query := `UPDATE ledger_transactions SET status = $1, ticket = $2, retcode = $3, details = $4, updated_at = $5 WHERE tx_id = $6`

	tag, err := tx.Exec(ctx, query, status, ticket, retcode, details, time.Now().UTC(), txID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("record outcome: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrTransactionNotFound()
	}
	return nil
}

// List fetches ledger rows with filtering and pagination, newest first.
func (r *LedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Login != nil {
		conditions = append(conditions, fmt.Sprintf("login = $%d", argIdx))
		args = append(args, *params.Login)
		argIdx++
	}
	if params.Direction != nil {
		conditions = append(conditions, fmt.Sprintf("direction = $%d", argIdx))
		args = append(args, *params.Direction)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ledger_transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("count ledger transactions: %w", err))
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM ledger_transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		ledgerColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list ledger transactions: %w", err))
	}
	defer rows.Close()

	var txns []domain.LedgerTransaction
	for rows.Next() {
		t := domain.LedgerTransaction{}
		err := rows.Scan(
			&t.TxID, &t.Login, &t.Direction, &t.Amount, &t.Status,
			&t.Ticket, &t.Retcode, &t.Details, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("scan ledger row: %w", err))
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("iterate ledger rows: %w", err))
	}
	return txns, total, nil
}

// scanLedgerRow is a helper to scan a single row into a LedgerTransaction.
func (r *LedgerRepo) scanLedgerRow(row pgx.Row) (*domain.LedgerTransaction, error) {
	t := &domain.LedgerTransaction{}
	err := row.Scan(
		&t.TxID, &t.Login, &t.Direction, &t.Amount, &t.Status,
		&t.Ticket, &t.Retcode, &t.Details, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("scan ledger transaction: %w", err))
	}
	return t, nil
}
