package dto

import "encoding/json"

// DepositRequest is the request body for creating and applying a deposit.
// Amount is a decimal string to avoid float rounding on the wire.
type DepositRequest struct {
	Login  uint64 `json:"login" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// WithdrawRequest is the request body for creating a withdrawal request.
type WithdrawRequest struct {
	Login  uint64 `json:"login" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse is the response body for a ledger transaction.
type TransactionResponse struct {
	TxID      string  `json:"tx_id"`
	Login     uint64  `json:"login"`
	Direction string  `json:"direction"`
	Amount    string  `json:"amount"`
	Status    string  `json:"status"`
	Ticket    *string `json:"ticket,omitempty"`
	Retcode   *string `json:"retcode,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ApplyResponse is the response body for an apply outcome.
type ApplyResponse struct {
	TxID    string          `json:"tx_id"`
	Ok      bool            `json:"ok"`
	Status  string          `json:"status"`
	Ticket  *string         `json:"ticket,omitempty"`
	Retcode *string         `json:"retcode,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// TransactionListResponse wraps a paginated ledger page.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// AccountAddRequest is the request body for opening a trading account.
type AccountAddRequest struct {
	Group        string `json:"group" binding:"required"`
	Name         string `json:"name" binding:"required,min=1,max=128"`
	Leverage     int    `json:"leverage" binding:"required,gt=0"`
	PassMain     string `json:"pass_main" binding:"required,min=8"`
	PassInvestor string `json:"pass_investor" binding:"required,min=8"`
	Email        string `json:"email,omitempty"`
	Country      string `json:"country,omitempty"`
}

// CheckPasswordRequest is the request body for verifying an account password.
type CheckPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the request body for setting an account password.
type ChangePasswordRequest struct {
	Type     string `json:"type" binding:"required,oneof=main investor"`
	Password string `json:"password" binding:"required,min=8"`
}

// PlatformReplyResponse surfaces a raw platform reply for pass-through
// endpoints.
type PlatformReplyResponse struct {
	Ok      bool            `json:"ok"`
	Retcode string          `json:"retcode"`
	Answer  json.RawMessage `json:"answer,omitempty"`
}
