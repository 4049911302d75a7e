package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mt5-gateway/config"
	"mt5-gateway/internal/adapter/http/middleware"
	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/internal/core/ports/mocks"
	"mt5-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Payment Handler Tests ---

func TestCreateDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	ticket := "987"
	mockSvc.EXPECT().
		CreateDeposit(gomock.Any(), uint64(12345), gomock.Any()).
		DoAndReturn(func(_ any, _ uint64, amount decimal.Decimal) (*ports.ApplyResult, error) {
			assert.Equal(t, "250.00", amount.StringFixed(2))
			return &ports.ApplyResult{
				TxID:   "D1a2b3c4d5e6",
				Ok:     true,
				Status: domain.StatusApplied,
				Ticket: &ticket,
			}, nil
		})

	body := []byte(`{"login":12345,"amount":"250.00"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/deposits", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateDeposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "D1a2b3c4d5e6", data["tx_id"])
	assert.Equal(t, true, data["ok"])
	assert.Equal(t, "applied", data["status"])
	assert.Equal(t, "987", data["ticket"])
}

func TestCreateDeposit_BadAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	body := []byte(`{"login":12345,"amount":"two hundred"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/deposits", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateDeposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDeposit_MissingLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	body := []byte(`{"amount":"250.00"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/deposits", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateDeposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	now := time.Now().UTC()
	mockSvc.EXPECT().
		CreateWithdraw(gomock.Any(), uint64(12345), gomock.Any()).
		Return(&domain.LedgerTransaction{
			TxID:      "Wf0e1d2c3b4a5",
			Login:     12345,
			Direction: domain.DirectionWithdraw,
			Amount:    decimal.RequireFromString("100.50"),
			Status:    domain.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

	body := []byte(`{"login":12345,"amount":"100.50"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/withdrawals", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateWithdraw(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Wf0e1d2c3b4a5", data["tx_id"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "100.50", data["amount"])
}

func TestCreateWithdraw_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	mockSvc.EXPECT().
		CreateWithdraw(gomock.Any(), uint64(12345), gomock.Any()).
		Return(nil, apperror.ErrInvalidAmount("amount exceeds maximum"))

	body := []byte(`{"login":12345,"amount":"99999999999"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/withdrawals", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateWithdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin Handler Tests ---

func TestApplyTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewAdminHandler(mockSvc)

	ticket := "987"
	mockSvc.EXPECT().
		Apply(gomock.Any(), "Wf0e1d2c3b4a5").
		Return(&ports.ApplyResult{
			TxID:   "Wf0e1d2c3b4a5",
			Ok:     true,
			Status: domain.StatusApplied,
			Ticket: &ticket,
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/transactions/Wf0e1d2c3b4a5/apply", nil)
	c.Params = gin.Params{{Key: "tx_id", Value: "Wf0e1d2c3b4a5"}}

	h.ApplyTransaction(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApplyTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewAdminHandler(mockSvc)

	mockSvc.EXPECT().
		Apply(gomock.Any(), "Dffffffffffff").
		Return(nil, apperror.ErrTransactionNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/transactions/Dffffffffffff/apply", nil)
	c.Params = gin.Params{{Key: "tx_id", Value: "Dffffffffffff"}}

	h.ApplyTransaction(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyTransaction_NotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewAdminHandler(mockSvc)

	mockSvc.EXPECT().
		Apply(gomock.Any(), "Wf0e1d2c3b4a5").
		Return(nil, apperror.ErrNotEligible("paid"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/transactions/Wf0e1d2c3b4a5/apply", nil)
	c.Params = gin.Params{{Key: "tx_id", Value: "Wf0e1d2c3b4a5"}}

	h.ApplyTransaction(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListTransactions_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewAdminHandler(mockSvc)

	mockSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params ports.LedgerListParams) ([]domain.LedgerTransaction, int64, error) {
			require.NotNil(t, params.Login)
			assert.Equal(t, uint64(12345), *params.Login)
			require.NotNil(t, params.Status)
			assert.Equal(t, domain.StatusPending, *params.Status)
			assert.Equal(t, 2, params.Page)
			return nil, 0, nil
		})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/transactions?login=12345&status=pending&page=2", nil)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTransactions_BadDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	h := NewAdminHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/transactions?direction=sideways", nil)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Account Handler Tests ---

func TestCreateAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCli := mocks.NewMockAccountClient(ctrl)
	h := NewAccountHandler(mockCli)

	mockCli.EXPECT().
		Add(gomock.Any(), ports.AccountAddRequest{
			Group:        `demo\standard`,
			Name:         "Jane Trader",
			Leverage:     100,
			PassMain:     "Ma1n#Pass",
			PassInvestor: "Inv3st#Pass",
			Email:        "jane@example.com",
			Country:      "DE",
		}).
		Return(&ports.PlatformReply{
			Ok:      true,
			Retcode: "0 Done",
			Answer:  json.RawMessage(`{"Login":"20001"}`),
		}, nil)

	body := []byte(`{"group":"demo\\standard","name":"Jane Trader","leverage":100,"pass_main":"Ma1n#Pass","pass_investor":"Inv3st#Pass","email":"jane@example.com","country":"DE"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/accounts", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateAccount(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetAccount_BadLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCli := mocks.NewMockAccountClient(ctrl)
	h := NewAccountHandler(mockCli)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounts/abc", nil)
	c.Params = gin.Params{{Key: "login", Value: "abc"}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Router Tests ---

func routerForTest(t *testing.T, svc ports.PaymentService) *gin.Engine {
	t.Helper()
	return SetupRouter(RouterDeps{
		PaymentSvc: svc,
		Admin: config.AdminConfig{
			Token:    "test-admin-token",
			AllowIPs: nil,
		},
		Logger: zerolog.Nop(),
	})
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockPaymentService(ctrl)
	r := routerForTest(t, mockSvc)

	// No token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/transactions", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Wrong token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/transactions", nil)
	req.Header.Set(middleware.HeaderAdminToken, "guess")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Correct token
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/transactions", nil)
	req.Header.Set(middleware.HeaderAdminToken, "test-admin-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_HealthEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := routerForTest(t, mocks.NewMockPaymentService(ctrl))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
