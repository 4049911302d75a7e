package handler

import (
	"strconv"

	"mt5-gateway/internal/adapter/http/dto"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"
	"mt5-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles trading-account pass-through endpoints.
type AccountHandler struct {
	accountCli ports.AccountClient
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountCli ports.AccountClient) *AccountHandler {
	return &AccountHandler{accountCli: accountCli}
}

// CreateAccount handles POST /api/v1/admin/accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.AccountAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reply, err := h.accountCli.Add(c.Request.Context(), ports.AccountAddRequest{
		Group:        req.Group,
		Name:         req.Name,
		Leverage:     req.Leverage,
		PassMain:     req.PassMain,
		PassInvestor: req.PassInvestor,
		Email:        req.Email,
		Country:      req.Country,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPlatformReplyResponse(reply))
}

// GetAccount handles GET /api/v1/admin/accounts/:login.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	login, err := parseLoginParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := h.accountCli.Get(c.Request.Context(), login)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPlatformReplyResponse(reply))
}

// CheckPassword handles POST /api/v1/admin/accounts/:login/check_password.
func (h *AccountHandler) CheckPassword(c *gin.Context) {
	login, err := parseLoginParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CheckPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reply, err := h.accountCli.CheckPassword(c.Request.Context(), login, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPlatformReplyResponse(reply))
}

// ChangePassword handles POST /api/v1/admin/accounts/:login/change_password.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	login, err := parseLoginParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reply, err := h.accountCli.ChangePassword(c.Request.Context(), login, req.Type, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPlatformReplyResponse(reply))
}

func parseLoginParam(c *gin.Context) (uint64, error) {
	login, err := strconv.ParseUint(c.Param("login"), 10, 64)
	if err != nil || login == 0 {
		return 0, apperror.ErrInvalidAccount()
	}
	return login, nil
}

func toPlatformReplyResponse(r *ports.PlatformReply) dto.PlatformReplyResponse {
	return dto.PlatformReplyResponse{
		Ok:      r.Ok,
		Retcode: r.Retcode,
		Answer:  r.Answer,
	}
}
