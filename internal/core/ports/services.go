package ports

import (
	"context"
	"encoding/json"
	"net/url"

	"mt5-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PlatformResponse is the normalized result of one platform request. Remote
// 4xx/5xx statuses are data, not errors.
type PlatformResponse struct {
	Status int
	Body   []byte
	// RequestURL and Method echo what was sent, for diagnostics.
	RequestURL string
	Method     string
}

// PlatformTransport performs single request/response calls against the
// platform's base URL over a persistent connection with an attached cookie
// store. An error return means the call could not be dispatched at all
// (DNS, TLS, timeout); the remote effect is then unknown.
type PlatformTransport interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (*PlatformResponse, error)
	// ExportCookies snapshots the cookie store for durable persistence.
	ExportCookies() ([]byte, error)
	// ImportCookies restores a previously exported cookie snapshot.
	ImportCookies(blob []byte) error
}

// ManagerSession owns the authenticated manager channel. EnsureAuthenticated
// runs the challenge-response handshake unless the session is still fresh;
// concurrent callers join a single in-flight handshake.
type ManagerSession interface {
	EnsureAuthenticated(ctx context.Context) error
	// Invalidate discards the session state and the persisted cookie store.
	Invalidate(ctx context.Context)
}

// BalanceClient issues balance-mutation calls against trading accounts.
// The returned outcome is populated even when Ok is false; a non-nil error
// means the request could not be dispatched and the remote effect is unknown.
type BalanceClient interface {
	Apply(ctx context.Context, req domain.MovementRequest) (*domain.MovementOutcome, error)
}

// ApplyResult is the structured outcome of applying a ledger transaction.
type ApplyResult struct {
	TxID    string                   `json:"tx_id"`
	Ok      bool                     `json:"ok"`
	Status  domain.TransactionStatus `json:"status"`
	Ticket  *string                  `json:"ticket,omitempty"`
	Retcode *string                  `json:"retcode,omitempty"`
	Details json.RawMessage          `json:"details,omitempty"`
}

// PaymentService composes the session, the balance client and the ledger into
// idempotent money-movement operations.
type PaymentService interface {
	// CreateDeposit inserts a pending deposit and immediately applies it.
	CreateDeposit(ctx context.Context, login uint64, amount decimal.Decimal) (*ApplyResult, error)
	// CreateWithdraw inserts a pending withdrawal; application happens later
	// through an administrative Apply call.
	CreateWithdraw(ctx context.Context, login uint64, amount decimal.Decimal) (*domain.LedgerTransaction, error)
	// Apply advances transaction txID at most once: an already-applied
	// transaction returns its stored outcome without any remote call.
	Apply(ctx context.Context, txID string) (*ApplyResult, error)
	// List exposes reconciliation queries over the ledger.
	List(ctx context.Context, params LedgerListParams) ([]domain.LedgerTransaction, int64, error)
}

// PlatformReply is a decoded platform response for pass-through operations.
type PlatformReply struct {
	Retcode string          `json:"retcode"`
	Ok      bool            `json:"ok"`
	Answer  json.RawMessage `json:"answer,omitempty"`
	Raw     json.RawMessage `json:"raw,omitempty"`
}

// AccountAddRequest carries the fields for opening a trading account.
type AccountAddRequest struct {
	Group        string
	Name         string
	Leverage     int
	Email        string
	Country      string
	PassMain     string
	PassInvestor string
}

// AccountClient exposes the platform's user-management calls over the same
// authenticated manager channel.
type AccountClient interface {
	Add(ctx context.Context, req AccountAddRequest) (*PlatformReply, error)
	Get(ctx context.Context, login uint64) (*PlatformReply, error)
	CheckPassword(ctx context.Context, login uint64, password string) (*PlatformReply, error)
	ChangePassword(ctx context.Context, login uint64, passType, password string) (*PlatformReply, error)
}
