package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mt5-gateway/internal/core/domain"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const tradeBalancePath = "/api/trade/balance"

// BalanceService implements ports.BalanceClient: it issues the platform's
// balance-mutation RPC under an authenticated manager session.
type BalanceService struct {
	transport ports.PlatformTransport
	session   ports.ManagerSession
	log       zerolog.Logger
}

// NewBalanceService creates a BalanceService.
func NewBalanceService(transport ports.PlatformTransport, session ports.ManagerSession, log zerolog.Logger) *BalanceService {
	return &BalanceService{
		transport: transport,
		session:   session,
		log:       log,
	}
}

// Apply issues one balance mutation. The platform expects this endpoint as a
// GET with all parameters in the query string; if that is rejected with 403,
// it is retried exactly once as a POST with identical parameters (some
// deployments require the POST verb behind certain proxies). The outcome is
// populated even on failure; a non-nil error means the request could not be
// dispatched and the remote effect is unknown.
func (s *BalanceService) Apply(ctx context.Context, req domain.MovementRequest) (*domain.MovementOutcome, error) {
	if req.Login == 0 {
		return nil, apperror.ErrInvalidAccount()
	}

	if err := s.session.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("login", strconv.FormatUint(req.Login, 10))
	query.Set("type", strconv.Itoa(int(req.DealType)))
	query.Set("balance", domain.FormatAmount(req.Amount))
	query.Set("comment", domain.TruncateComment(req.Comment))
	if req.CheckMargin != nil {
		query.Set("check_margin", strconv.Itoa(*req.CheckMargin))
	}

	resp, err := s.transport.Do(ctx, http.MethodGet, tradeBalancePath, query, nil)
	if err != nil {
		return nil, apperror.ErrTransport(err)
	}

	if resp.Status == http.StatusForbidden {
		s.log.Warn().
			Uint64("login", req.Login).
			Msg("balance GET rejected with 403, retrying once as POST")
		resp, err = s.transport.Do(ctx, http.MethodPost, tradeBalancePath, query, nil)
		if err != nil {
			return nil, apperror.ErrTransport(err)
		}
	}

	outcome := &domain.MovementOutcome{
		HTTPStatus:    resp.Status,
		RequestURL:    resp.RequestURL,
		RequestMethod: resp.Method,
		RawBody:       string(resp.Body),
	}

	decoder := json.NewDecoder(bytes.NewReader(resp.Body))
	decoder.UseNumber()
	var decoded struct {
		Retcode string          `json:"retcode"`
		Answer  json.RawMessage `json:"answer"`
	}
	if err := decoder.Decode(&decoded); err != nil {
		s.log.Warn().
			Uint64("login", req.Login).
			Int("http_status", resp.Status).
			Msg("balance call returned malformed body")
		return outcome, nil
	}

	outcome.Retcode = decoded.Retcode
	outcome.Answer = decoded.Answer
	outcome.Ok = retcodeOK(decoded.Retcode)
	outcome.Ticket = extractTicket(decoded.Answer)

	evt := s.log.Info()
	if !outcome.Ok {
		evt = s.log.Warn()
	}
	evt.Uint64("login", req.Login).
		Int("deal_type", int(req.DealType)).
		Str("balance", domain.FormatAmount(req.Amount)).
		Str("retcode", decoded.Retcode).
		Str("method", outcome.RequestMethod).
		Msg("balance mutation completed")

	return outcome, nil
}

// retcodeOK reports whether a platform retcode is success-class: the code
// string begins with "0".
func retcodeOK(retcode string) bool {
	return strings.HasPrefix(retcode, "0")
}

// extractTicket pulls the remote deal ticket out of the nested answer object.
// The platform is inconsistent about returning it as a string or a number.
func extractTicket(answer json.RawMessage) *string {
	if len(answer) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(answer))
	decoder.UseNumber()
	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil
	}
	raw, ok := fields["Ticket"]
	if !ok || raw == nil {
		return nil
	}
	var ticket string
	switch v := raw.(type) {
	case string:
		ticket = v
	case json.Number:
		ticket = v.String()
	default:
		return nil
	}
	if ticket == "" {
		return nil
	}
	return &ticket
}
