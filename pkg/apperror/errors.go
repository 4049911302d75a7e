package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Manager handshake (AUTH) ----

// ErrHandshakeStartFailed indicates auth/start returned a bad retcode or an
// empty challenge. Terminal for the attempt; the session stays unauthenticated.
func ErrHandshakeStartFailed(detail string) *AppError {
	return New("AUTH_001", fmt.Sprintf("Manager handshake start failed: %s", detail), http.StatusBadGateway)
}

// ErrHandshakeAnswerFailed indicates the server rejected our proof or its
// counter-proof did not verify. An authentication failure, not a transient one.
func ErrHandshakeAnswerFailed(detail string) *AppError {
	return New("AUTH_002", fmt.Sprintf("Manager handshake answer failed: %s", detail), http.StatusBadGateway)
}

// ErrMalformedChallenge indicates the server challenge was not valid hex.
func ErrMalformedChallenge(err error) *AppError {
	return Wrap("AUTH_003", "Malformed server challenge", http.StatusBadGateway, err)
}

// ---- Ledger transactions (TX) ----

func ErrTransactionNotFound() *AppError {
	return New("TX_001", "Transaction not found", http.StatusNotFound)
}

func ErrDuplicateTransactionID() *AppError {
	return New("TX_002", "Transaction id already exists", http.StatusConflict)
}

// ErrNotEligible reports a direction/status combination that cannot be applied.
func ErrNotEligible(status string) *AppError {
	return New("TX_003", fmt.Sprintf("Transaction cannot be applied in status %q", status), http.StatusConflict)
}

func ErrInvalidAmount(detail string) *AppError {
	return New("TX_004", fmt.Sprintf("Invalid amount: %s", detail), http.StatusBadRequest)
}

func ErrInvalidAccount() *AppError {
	return New("TX_005", "Account login must be a positive integer", http.StatusBadRequest)
}

// ---- Remote platform (RPC) ----

// ErrTransport wraps a dispatch-level failure (DNS, TLS, timeout). The remote
// effect is unknown, so callers must not record an outcome for it.
func ErrTransport(err error) *AppError {
	return Wrap("RPC_001", "Platform request could not be dispatched", http.StatusBadGateway, err)
}

// ErrInvalidResponse reports a platform body that was not well-formed JSON.
func ErrInvalidResponse(raw string) *AppError {
	return New("RPC_002", fmt.Sprintf("Invalid platform response: %s", truncate(raw, 500)), http.StatusBadGateway)
}

// ---- Admin surface (SEC) ----

func ErrForbidden() *AppError {
	return New("SEC_001", "Forbidden", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("TX_004", message, http.StatusBadRequest)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
