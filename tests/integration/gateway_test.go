package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mt5-gateway/config"
	httpHandler "mt5-gateway/internal/adapter/http/handler"
	"mt5-gateway/internal/adapter/http/middleware"
	"mt5-gateway/internal/adapter/platform"
	redisStorage "mt5-gateway/internal/adapter/storage/redis"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/internal/service"
	"mt5-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminToken = "integration-admin-token"

// testApp wires the full stack: real HTTP layer, middleware, services, Redis
// stores over miniredis, in-memory ledger with row-lock semantics, and a fake
// platform performing the real handshake math.
type testApp struct {
	server   *httptest.Server
	redis    *miniredis.Miniredis
	platform *fakePlatform
	repo     *inMemoryLedgerRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	fp := newFakePlatform()

	log := logger.New("error", false)
	transport, err := platform.NewClient(fp.srv.URL, "mt5-gateway-test", 2*time.Second, 5*time.Second, log)
	require.NoError(t, err)

	platformCfg := config.PlatformConfig{
		BaseURL:         fp.srv.URL,
		ManagerLogin:    managerLogin,
		ManagerPassword: managerPassword,
		Version:         484,
		Agent:           "mt5-gateway-test",
		SessionTTL:      25 * time.Minute,
	}

	sessionStore := redisStorage.NewSessionStore(rdb, time.Hour)
	session := service.NewManagerSession(transport, service.NewCredentialHasher(), sessionStore, platformCfg, log)
	balanceCli := service.NewBalanceService(transport, session, log)

	repo := newInMemoryLedgerRepo()
	paymentSvc := service.NewPaymentService(
		repo,
		balanceCli,
		redisStorage.NewOutcomeCache(rdb),
		newInMemoryTransactor(),
		decimal.RequireFromString("1000000"),
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		Admin:          config.AdminConfig{Token: adminToken},
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	return &testApp{
		server:   httptest.NewServer(router),
		redis:    mr,
		platform: fp,
		repo:     repo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.platform.close()
	a.redis.Close()
}

// doJSON issues a request and decodes the response envelope. An empty token
// leaves the admin header unset.
func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(blob)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.HeaderAdminToken, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func data(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	d, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "envelope has no data object: %v", envelope)
	return d
}

func applyPath(txID string) string {
	return fmt.Sprintf("/api/v1/admin/transactions/%s/apply", txID)
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_DepositEndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, envelope := app.doJSON(t, http.MethodPost, "/api/v1/deposits", "", map[string]any{
		"login":  12345,
		"amount": "250",
	})
	require.Equal(t, http.StatusCreated, status)

	d := data(t, envelope)
	assert.Equal(t, true, d["ok"])
	assert.Equal(t, "applied", d["status"])
	assert.Equal(t, "900001", d["ticket"])
	txID, _ := d["tx_id"].(string)
	require.NotEmpty(t, txID)

	// One handshake, one balance mutation.
	assert.Equal(t, 1, app.platform.starts())
	calls := app.platform.balanceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, "12345", calls[0].Params.Get("login"))
	assert.Equal(t, "2", calls[0].Params.Get("type"))
	assert.Equal(t, "250.00", calls[0].Params.Get("balance"))
	assert.Equal(t, "DEP:"+txID, calls[0].Params.Get("comment"))
	assert.False(t, calls[0].Params.Has("check_margin"))
}

func TestIntegration_WithdrawThenAdminApply(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, envelope := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", "", map[string]any{
		"login":  12345,
		"amount": "100.50",
	})
	require.Equal(t, http.StatusCreated, status)

	d := data(t, envelope)
	assert.Equal(t, "pending", d["status"])
	txID, _ := d["tx_id"].(string)
	require.NotEmpty(t, txID)

	// Recording the intent must not touch the platform.
	require.Empty(t, app.platform.balanceCalls())

	status, envelope = app.doJSON(t, http.MethodPost, applyPath(txID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	d = data(t, envelope)
	assert.Equal(t, true, d["ok"])
	assert.Equal(t, "applied", d["status"])

	calls := app.platform.balanceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "4", calls[0].Params.Get("type"))
	assert.Equal(t, "-100.50", calls[0].Params.Get("balance"))
	assert.Equal(t, "1", calls[0].Params.Get("check_margin"))
	assert.Equal(t, "WDR:"+txID, calls[0].Params.Get("comment"))
}

func TestIntegration_ApplyIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, envelope := app.doJSON(t, http.MethodPost, "/api/v1/deposits", "", map[string]any{
		"login":  777,
		"amount": "42",
	})
	require.Equal(t, http.StatusCreated, status)
	d := data(t, envelope)
	txID := d["tx_id"].(string)
	ticket := d["ticket"]

	// Replay straight away: served from the outcome cache.
	status, envelope = app.doJSON(t, http.MethodPost, applyPath(txID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ticket, data(t, envelope)["ticket"])

	// Replay after the cache is gone: served from the ledger row.
	app.redis.FlushAll()
	status, envelope = app.doJSON(t, http.MethodPost, applyPath(txID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	d = data(t, envelope)
	assert.Equal(t, true, d["ok"])
	assert.Equal(t, ticket, d["ticket"])

	// The remote side saw exactly one mutation across all three calls.
	assert.Len(t, app.platform.balanceCalls(), 1)
}

func TestIntegration_FailedApplyCanBeRetried(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, envelope := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", "", map[string]any{
		"login":  555,
		"amount": "900",
	})
	require.Equal(t, http.StatusCreated, status)
	txID := data(t, envelope)["tx_id"].(string)

	app.platform.setBalanceRetcode("10019 Not enough money")
	status, envelope = app.doJSON(t, http.MethodPost, applyPath(txID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	d := data(t, envelope)
	assert.Equal(t, false, d["ok"])
	assert.Equal(t, "failed", d["status"])

	// failed is retryable: a later apply runs the mutation again.
	app.platform.setBalanceRetcode("0 Done")
	status, envelope = app.doJSON(t, http.MethodPost, applyPath(txID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	d = data(t, envelope)
	assert.Equal(t, true, d["ok"])
	assert.Equal(t, "applied", d["status"])

	assert.Len(t, app.platform.balanceCalls(), 2)
}

func TestIntegration_BalancePostFallback(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.platform.setRejectGET(true)

	status, envelope := app.doJSON(t, http.MethodPost, "/api/v1/deposits", "", map[string]any{
		"login":  12345,
		"amount": "10",
	})
	require.Equal(t, http.StatusCreated, status)
	d := data(t, envelope)
	assert.Equal(t, true, d["ok"])

	// The GET was rejected before being recorded; the retry arrives as POST
	// with identical parameters.
	calls := app.platform.balanceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "10.00", calls[0].Params.Get("balance"))
}

func TestIntegration_AdminRequiresToken(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, envelope := app.doJSON(t, http.MethodPost, applyPath("D000000000000"), "", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SEC_001", envelope["error_code"])

	status, envelope = app.doJSON(t, http.MethodPost, applyPath("D000000000000"), "wrong-token", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SEC_001", envelope["error_code"])

	// With the right token the request reaches the service layer.
	status, envelope = app.doJSON(t, http.MethodPost, applyPath("D000000000000"), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "TX_001", envelope["error_code"])
}

func TestIntegration_ListTransactions(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, _ := app.doJSON(t, http.MethodPost, "/api/v1/deposits", "", map[string]any{
		"login": 111, "amount": "5",
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", "", map[string]any{
		"login": 222, "amount": "7",
	})
	require.Equal(t, http.StatusCreated, status)

	status, envelope := app.doJSON(t, http.MethodGet, "/api/v1/admin/transactions?direction=withdraw", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	d := data(t, envelope)
	assert.Equal(t, float64(1), d["total"])
	rows, ok := d["transactions"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "withdraw", row["direction"])
	assert.Equal(t, float64(222), row["login"])
	assert.Equal(t, "pending", row["status"])
}
