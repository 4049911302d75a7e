package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/internal/core/ports/mocks"
	"mt5-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type balanceDeps struct {
	transport *mocks.MockPlatformTransport
	session   *mocks.MockManagerSession
}

func setupBalanceService(t *testing.T) (*BalanceService, balanceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := balanceDeps{
		transport: mocks.NewMockPlatformTransport(ctrl),
		session:   mocks.NewMockManagerSession(ctrl),
	}
	return NewBalanceService(deps.transport, deps.session, zerolog.Nop()), deps
}

func depositRequest() domain.MovementRequest {
	return domain.MovementRequest{
		Login:    12345,
		DealType: domain.DealBalance,
		Amount:   decimal.RequireFromString("250"),
		Comment:  "DEP:D1a2b3c4d5e6",
	}
}

func TestBalanceApply_Success(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _, _ string, query url.Values, _ any) (*ports.PlatformResponse, error) {
			assert.Equal(t, "12345", query.Get("login"))
			assert.Equal(t, "2", query.Get("type"))
			assert.Equal(t, "250.00", query.Get("balance"))
			assert.Equal(t, "DEP:D1a2b3c4d5e6", query.Get("comment"))
			assert.False(t, query.Has("check_margin"))
			return &ports.PlatformResponse{
				Status:     http.StatusOK,
				Body:       []byte(`{"retcode":"0 Done","answer":{"Ticket":"987"}}`),
				RequestURL: "https://platform/api/trade/balance?login=12345",
				Method:     http.MethodGet,
			}, nil
		})

	outcome, err := svc.Apply(ctx, depositRequest())
	require.NoError(t, err)
	assert.True(t, outcome.Ok)
	assert.Equal(t, "0 Done", outcome.Retcode)
	require.NotNil(t, outcome.Ticket)
	assert.Equal(t, "987", *outcome.Ticket)
	assert.Equal(t, http.MethodGet, outcome.RequestMethod)
}

func TestBalanceApply_NumericTicket(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		Return(&ports.PlatformResponse{
			Status: http.StatusOK,
			Body:   []byte(`{"retcode":"0 Done","answer":{"Ticket":98765432109876}}`),
			Method: http.MethodGet,
		}, nil)

	outcome, err := svc.Apply(ctx, depositRequest())
	require.NoError(t, err)
	require.NotNil(t, outcome.Ticket)
	assert.Equal(t, "98765432109876", *outcome.Ticket)
}

func TestBalanceApply_WithdrawSendsNegativeAmountAndMarginCheck(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	checkMargin := 1
	req := domain.MovementRequest{
		Login:       777,
		DealType:    domain.DealCharge,
		Amount:      decimal.RequireFromString("-100.5"),
		Comment:     "WDR:Wf0e1d2c3b4a5",
		CheckMargin: &checkMargin,
	}

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _, _ string, query url.Values, _ any) (*ports.PlatformResponse, error) {
			assert.Equal(t, "4", query.Get("type"))
			assert.Equal(t, "-100.50", query.Get("balance"))
			assert.Equal(t, "1", query.Get("check_margin"))
			return &ports.PlatformResponse{
				Status: http.StatusOK,
				Body:   []byte(`{"retcode":"0 Done","answer":{"Ticket":"1"}}`),
				Method: http.MethodGet,
			}, nil
		})

	outcome, err := svc.Apply(ctx, req)
	require.NoError(t, err)
	assert.True(t, outcome.Ok)
}

func TestBalanceApply_ForbiddenRetriesOnceAsPost(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	gomock.InOrder(
		deps.transport.EXPECT().
			Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
			Return(&ports.PlatformResponse{
				Status: http.StatusForbidden,
				Body:   []byte(`Forbidden`),
				Method: http.MethodGet,
			}, nil),
		deps.transport.EXPECT().
			Do(ctx, http.MethodPost, "/api/trade/balance", gomock.Any(), nil).
			Return(&ports.PlatformResponse{
				Status: http.StatusOK,
				Body:   []byte(`{"retcode":"0 Done","answer":{"Ticket":"42"}}`),
				Method: http.MethodPost,
			}, nil),
	)

	outcome, err := svc.Apply(ctx, depositRequest())
	require.NoError(t, err)
	assert.True(t, outcome.Ok)
	assert.Equal(t, http.MethodPost, outcome.RequestMethod)
}

func TestBalanceApply_BusinessRejection(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		Return(&ports.PlatformResponse{
			Status: http.StatusOK,
			Body:   []byte(`{"retcode":"10019 Not enough money"}`),
			Method: http.MethodGet,
		}, nil)

	outcome, err := svc.Apply(ctx, depositRequest())
	require.NoError(t, err)
	assert.False(t, outcome.Ok)
	assert.Equal(t, "10019 Not enough money", outcome.Retcode)
	assert.Nil(t, outcome.Ticket)
}

func TestBalanceApply_MalformedBodyIsAFailedOutcome(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		Return(&ports.PlatformResponse{
			Status: http.StatusBadGateway,
			Body:   []byte(`<html>upstream error</html>`),
			Method: http.MethodGet,
		}, nil)

	outcome, err := svc.Apply(ctx, depositRequest())
	require.NoError(t, err)
	assert.False(t, outcome.Ok)
	assert.Empty(t, outcome.Retcode)
	assert.Contains(t, outcome.RawBody, "upstream error")
}

func TestBalanceApply_TransportFailure(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		Return(nil, errors.New("dial tcp: connection refused"))

	outcome, err := svc.Apply(ctx, depositRequest())
	assert.Nil(t, outcome)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RPC_001", appErr.Code)
}

func TestBalanceApply_SessionFailureShortCircuits(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	deps.session.EXPECT().
		EnsureAuthenticated(ctx).
		Return(apperror.ErrHandshakeStartFailed("retcode=\"13 Access denied\""))

	outcome, err := svc.Apply(ctx, depositRequest())
	assert.Nil(t, outcome)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestBalanceApply_ZeroLoginRejected(t *testing.T) {
	svc, _ := setupBalanceService(t)

	req := depositRequest()
	req.Login = 0
	outcome, err := svc.Apply(context.Background(), req)
	assert.Nil(t, outcome)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TX_005", appErr.Code)
}

func TestBalanceApply_CommentTruncatedToPlatformLimit(t *testing.T) {
	svc, deps := setupBalanceService(t)
	ctx := context.Background()

	req := depositRequest()
	req.Comment = "DEP:D1a2b3c4d5e6 " + strings.Repeat("x", 64)

	deps.session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	deps.transport.EXPECT().
		Do(ctx, http.MethodGet, "/api/trade/balance", gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _, _ string, query url.Values, _ any) (*ports.PlatformResponse, error) {
			assert.Len(t, []rune(query.Get("comment")), 32)
			return &ports.PlatformResponse{
				Status: http.StatusOK,
				Body:   []byte(`{"retcode":"0 Done","answer":{"Ticket":"1"}}`),
				Method: http.MethodGet,
			}, nil
		})

	_, err := svc.Apply(ctx, req)
	require.NoError(t, err)
}
