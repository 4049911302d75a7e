package handler

import (
	"mt5-gateway/internal/adapter/http/dto"
	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"
	"mt5-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles money-movement endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreateDeposit handles POST /api/v1/deposits: it records the deposit and
// applies it to the trading account in one call.
func (h *PaymentHandler) CreateDeposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount("amount is not a valid decimal"))
		return
	}

	result, err := h.paymentSvc.CreateDeposit(c.Request.Context(), req.Login, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toApplyResponse(result))
}

// CreateWithdraw handles POST /api/v1/withdrawals: it records a pending
// withdrawal for later administrative application.
func (h *PaymentHandler) CreateWithdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount("amount is not a valid decimal"))
		return
	}

	row, err := h.paymentSvc.CreateWithdraw(c.Request.Context(), req.Login, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(row))
}

func toApplyResponse(r *ports.ApplyResult) dto.ApplyResponse {
	return dto.ApplyResponse{
		TxID:    r.TxID,
		Ok:      r.Ok,
		Status:  string(r.Status),
		Ticket:  r.Ticket,
		Retcode: r.Retcode,
		Details: r.Details,
	}
}

func toTransactionResponse(t *domain.LedgerTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		TxID:      t.TxID,
		Login:     t.Login,
		Direction: string(t.Direction),
		Amount:    domain.FormatAmount(t.Amount),
		Status:    string(t.Status),
		Ticket:    t.Ticket,
		Retcode:   t.Retcode,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
