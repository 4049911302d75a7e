package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DealType is the platform's operation code for a balance mutation. The codes
// are opaque small integers known to the remote platform.
type DealType int

const (
	DealBalance    DealType = 2 // balance credit/debit
	DealCredit     DealType = 3
	DealCharge     DealType = 4 // charge/fee, used for withdrawals
	DealCorrection DealType = 5
	DealBonus      DealType = 6
)

// maxCommentLen is a platform hard limit on deal comments.
const maxCommentLen = 32

// MovementRequest describes one balance-mutation call against a trading
// account. Constructed fresh per call; never persisted on its own.
type MovementRequest struct {
	Login    uint64
	DealType DealType
	// Amount is signed: positive credits the account, negative debits it.
	// Transmitted with exactly two decimal digits.
	Amount  decimal.Decimal
	Comment string
	// CheckMargin is an opaque pass-through flag the platform interprets for
	// debit-style operations. Nil means "do not send".
	CheckMargin *int
}

// MovementOutcome carries the full result of a balance-mutation call, even on
// failure, so callers can persist complete diagnostics.
type MovementOutcome struct {
	Ok            bool            `json:"ok"`
	Retcode       string          `json:"retcode,omitempty"`
	Ticket        *string         `json:"ticket,omitempty"`
	Answer        json.RawMessage `json:"answer,omitempty"`
	HTTPStatus    int             `json:"http_status"`
	RequestURL    string          `json:"request_url"`
	RequestMethod string          `json:"request_method"`
	RawBody       string          `json:"raw_body,omitempty"`
}

// ValidateAmount checks a requested transaction amount against the gateway's
// bounds before any remote call: strictly positive, at most max, and at most
// two decimal places of precision.
func ValidateAmount(amount, max decimal.Decimal) error {
	if amount.Exponent() < -2 {
		return fmt.Errorf("amount %s has more than two decimal places", amount.String())
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero, got %s", amount.String())
	}
	if amount.GreaterThan(max) {
		return fmt.Errorf("amount %s exceeds maximum %s", amount.String(), max.String())
	}
	return nil
}

// FormatAmount renders an amount the way the platform expects: exactly two
// decimal digits, sign preserved.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// TruncateComment enforces the platform's 32-character comment limit.
func TruncateComment(comment string) string {
	runes := []rune(comment)
	if len(runes) <= maxCommentLen {
		return comment
	}
	return string(runes[:maxCommentLen])
}
