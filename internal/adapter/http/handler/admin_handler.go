package handler

import (
	"strconv"

	"mt5-gateway/internal/adapter/http/dto"
	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"
	"mt5-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrative ledger operations.
type AdminHandler struct {
	paymentSvc ports.PaymentService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(paymentSvc ports.PaymentService) *AdminHandler {
	return &AdminHandler{paymentSvc: paymentSvc}
}

// ApplyTransaction handles POST /api/v1/admin/transactions/:tx_id/apply.
// Safe to call repeatedly: an already-applied transaction replays its stored
// outcome without touching the platform.
func (h *AdminHandler) ApplyTransaction(c *gin.Context) {
	txID := c.Param("tx_id")
	if txID == "" {
		response.Error(c, apperror.Validation("tx_id is required"))
		return
	}

	result, err := h.paymentSvc.Apply(c.Request.Context(), txID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toApplyResponse(result))
}

// ListTransactions handles GET /api/v1/admin/transactions with optional
// login, direction and status filters.
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	params := ports.LedgerListParams{
		Page:     1,
		PageSize: 20,
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			response.Error(c, apperror.Validation("page must be a positive integer"))
			return
		}
		params.Page = page
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > 200 {
			response.Error(c, apperror.Validation("page_size must be between 1 and 200"))
			return
		}
		params.PageSize = size
	}
	if v := c.Query("login"); v != "" {
		login, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("login must be a positive integer"))
			return
		}
		params.Login = &login
	}
	if v := c.Query("direction"); v != "" {
		direction := domain.Direction(v)
		if direction != domain.DirectionDeposit && direction != domain.DirectionWithdraw {
			response.Error(c, apperror.Validation("direction must be deposit or withdraw"))
			return
		}
		params.Direction = &direction
	}
	if v := c.Query("status"); v != "" {
		status := domain.TransactionStatus(v)
		if !status.Valid() {
			response.Error(c, apperror.Validation("unknown status"))
			return
		}
		params.Status = &status
	}

	rows, total, err := h.paymentSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toTransactionResponse(&rows[i]))
	}

	response.OK(c, dto.TransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         params.Page,
		PageSize:     params.PageSize,
	})
}
