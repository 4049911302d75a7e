package domain

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction distinguishes money flowing into or out of a trading account.
type Direction string

const (
	DirectionDeposit  Direction = "deposit"
	DirectionWithdraw Direction = "withdraw"
)

// TransactionStatus represents the lifecycle state of a ledger transaction.
//
// pending -> {paid, approved} (administrative steps) -> applied | failed.
// Only applied is terminal; a failed transaction may be re-applied.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusPaid     TransactionStatus = "paid"
	StatusApproved TransactionStatus = "approved"
	StatusApplied  TransactionStatus = "applied"
	StatusFailed   TransactionStatus = "failed"
)

// Valid reports whether s is a known lifecycle state.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusApproved, StatusApplied, StatusFailed:
		return true
	}
	return false
}

// LedgerTransaction is the durable unit of idempotence: one requested
// financial operation and its eventual remote outcome.
type LedgerTransaction struct {
	TxID      string            `json:"tx_id"`
	Login     uint64            `json:"login"`
	Direction Direction         `json:"direction"`
	Amount    decimal.Decimal   `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Ticket    *string           `json:"ticket,omitempty"`
	Retcode   *string           `json:"retcode,omitempty"`
	Details   json.RawMessage   `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// IsTerminal reports whether the transaction reached its final state.
// failed is deliberately non-terminal: a later re-apply is allowed.
func (t *LedgerTransaction) IsTerminal() bool {
	return t.Status == StatusApplied
}

// IsEligibleForApply reports whether the row may be advanced by an apply call.
// Deposits may additionally be applied from paid (payment confirmed upstream).
func (t *LedgerTransaction) IsEligibleForApply() bool {
	switch t.Status {
	case StatusPending, StatusApproved, StatusFailed:
		return true
	case StatusPaid:
		return t.Direction == DirectionDeposit
	default:
		return false
	}
}

// Comment derives the remote deal comment from the transaction id, so the
// platform's ledger can be audited against the local one.
func (t *LedgerTransaction) Comment() string {
	prefix := "DEP:"
	if t.Direction == DirectionWithdraw {
		prefix = "WDR:"
	}
	return TruncateComment(prefix + t.TxID)
}

// SignedAmount returns the amount with the sign the platform expects:
// positive for deposits, negative for withdrawals.
func (t *LedgerTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionWithdraw {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// DealType returns the platform operation code for the transaction direction.
func (t *LedgerTransaction) DealType() DealType {
	if t.Direction == DirectionWithdraw {
		return DealCharge
	}
	return DealBalance
}

// NewTransactionID generates an unguessable transaction id prefixed by
// direction: "D" or "W" followed by 12 hex characters (6 random bytes).
func NewTransactionID(direction Direction) (string, error) {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generating transaction id: %w", err)
	}
	prefix := "D"
	if direction == DirectionWithdraw {
		prefix = "W"
	}
	return prefix + hex.EncodeToString(buf[:]), nil
}
