package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const outcomeCacheTTL = 24 * time.Hour

// withdrawCheckMargin asks the platform to enforce its margin check on
// debit-style operations. Opaque pass-through; the platform interprets it.
var withdrawCheckMargin = 1

// PaymentServiceImpl implements ports.PaymentService: the facade composing
// the manager session, the balance client and the ledger into the single
// idempotent operation "apply transaction N".
type PaymentServiceImpl struct {
	ledgerRepo   ports.LedgerRepository
	balanceCli   ports.BalanceClient
	outcomeCache ports.OutcomeCache
	transactor   ports.DBTransactor
	maxAmount    decimal.Decimal
	log          zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	ledgerRepo ports.LedgerRepository,
	balanceCli ports.BalanceClient,
	outcomeCache ports.OutcomeCache,
	transactor ports.DBTransactor,
	maxAmount decimal.Decimal,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		ledgerRepo:   ledgerRepo,
		balanceCli:   balanceCli,
		outcomeCache: outcomeCache,
		transactor:   transactor,
		maxAmount:    maxAmount,
		log:          log,
	}
}

// CreateDeposit inserts a pending deposit row and immediately applies it.
func (s *PaymentServiceImpl) CreateDeposit(ctx context.Context, login uint64, amount decimal.Decimal) (*ports.ApplyResult, error) {
	tx, err := s.createPending(ctx, login, domain.DirectionDeposit, amount)
	if err != nil {
		return nil, err
	}
	return s.Apply(ctx, tx.TxID)
}

// CreateWithdraw inserts a pending withdrawal. Application happens later via
// an administrative Apply call once the request is reviewed.
func (s *PaymentServiceImpl) CreateWithdraw(ctx context.Context, login uint64, amount decimal.Decimal) (*domain.LedgerTransaction, error) {
	return s.createPending(ctx, login, domain.DirectionWithdraw, amount)
}

func (s *PaymentServiceImpl) createPending(ctx context.Context, login uint64, direction domain.Direction, amount decimal.Decimal) (*domain.LedgerTransaction, error) {
	if login == 0 {
		return nil, apperror.ErrInvalidAccount()
	}
	amount = amount.Round(2)
	if err := domain.ValidateAmount(amount, s.maxAmount); err != nil {
		return nil, apperror.ErrInvalidAmount(err.Error())
	}

	txID, err := domain.NewTransactionID(direction)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	now := time.Now().UTC()
	row := &domain.LedgerTransaction{
		TxID:      txID,
		Login:     login,
		Direction: direction,
		Amount:    amount,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.Create(ctx, dbTx, row); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txID).
		Uint64("login", login).
		Str("direction", string(direction)).
		Str("amount", domain.FormatAmount(amount)).
		Msg("ledger transaction created")

	return row, nil
}

// Apply advances transaction txID at most once. An already-applied
// transaction returns its stored outcome verbatim with zero remote calls;
// concurrent callers for the same id serialize on the row lock.
func (s *PaymentServiceImpl) Apply(ctx context.Context, txID string) (*ports.ApplyResult, error) {
	// Layer 1: cached outcome for already-applied transactions. Best effort;
	// any failure falls through to the locked database path.
	cached, err := s.outcomeCache.Get(ctx, txID)
	if err != nil {
		s.log.Warn().Err(err).Str("tx_id", txID).Msg("outcome cache read failed, falling through to DB")
	}
	if cached != nil {
		result := &ports.ApplyResult{}
		if err := json.Unmarshal(cached, result); err == nil {
			return result, nil
		}
		s.log.Warn().Str("tx_id", txID).Msg("discarding corrupt cached outcome")
	}

	// Layer 2: exclusive row lock for the duration of the unit of work. This
	// serializes concurrent applies for the same id while leaving different
	// transactions fully parallel.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	row, err := s.ledgerRepo.GetByIDForUpdate(ctx, dbTx, txID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.ErrTransactionNotFound()
	}

	if row.IsTerminal() {
		// Idempotence contract: return the stored outcome, never re-execute.
		if err := dbTx.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		result := resultFromRow(row)
		s.cacheOutcome(ctx, result)
		return result, nil
	}

	if !row.IsEligibleForApply() {
		return nil, apperror.ErrNotEligible(string(row.Status))
	}

	req := domain.MovementRequest{
		Login:    row.Login,
		DealType: row.DealType(),
		Amount:   row.SignedAmount(),
		Comment:  row.Comment(),
	}
	if row.Direction == domain.DirectionWithdraw {
		req.CheckMargin = &withdrawCheckMargin
	}

	outcome, err := s.balanceCli.Apply(ctx, req)
	if err != nil {
		// Dispatch failed: the remote effect is unknown, so the row must
		// stay unchanged for a safe future retry. The deferred rollback
		// releases the lock without recording anything.
		return nil, err
	}

	details, err := json.Marshal(outcome)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal outcome: %w", err))
	}

	status := domain.StatusFailed
	if outcome.Ok {
		status = domain.StatusApplied
	}
	var retcode *string
	if outcome.Retcode != "" {
		retcode = &outcome.Retcode
	}

	if err := s.ledgerRepo.RecordOutcome(ctx, dbTx, txID, status, outcome.Ticket, retcode, details); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	result := &ports.ApplyResult{
		TxID:    txID,
		Ok:      outcome.Ok,
		Status:  status,
		Ticket:  outcome.Ticket,
		Retcode: retcode,
		Details: details,
	}
	if outcome.Ok {
		s.cacheOutcome(ctx, result)
	}

	evt := s.log.Info()
	if !outcome.Ok {
		evt = s.log.Warn()
	}
	evt.Str("tx_id", txID).
		Uint64("login", row.Login).
		Str("status", string(status)).
		Str("retcode", outcome.Retcode).
		Msg("transaction apply finished")

	return result, nil
}

// List exposes reconciliation queries over the ledger.
func (s *PaymentServiceImpl) List(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerTransaction, int64, error) {
	return s.ledgerRepo.List(ctx, params)
}

// cacheOutcome stores an applied outcome for fast idempotent replies.
// Best effort: cache failures only degrade to the DB path.
func (s *PaymentServiceImpl) cacheOutcome(ctx context.Context, result *ports.ApplyResult) {
	blob, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.outcomeCache.Set(ctx, result.TxID, blob, outcomeCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("tx_id", result.TxID).Msg("failed to cache applied outcome")
	}
}

func resultFromRow(row *domain.LedgerTransaction) *ports.ApplyResult {
	return &ports.ApplyResult{
		TxID:    row.TxID,
		Ok:      true,
		Status:  row.Status,
		Ticket:  row.Ticket,
		Retcode: row.Retcode,
		Details: row.Details,
	}
}
