package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountService implements ports.AccountClient: thin pass-throughs to the
// platform's user-management endpoints over the authenticated manager channel.
type AccountService struct {
	transport ports.PlatformTransport
	session   ports.ManagerSession
	log       zerolog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(transport ports.PlatformTransport, session ports.ManagerSession, log zerolog.Logger) *AccountService {
	return &AccountService{
		transport: transport,
		session:   session,
		log:       log,
	}
}

// Add opens a new trading account.
func (s *AccountService) Add(ctx context.Context, req ports.AccountAddRequest) (*ports.PlatformReply, error) {
	query := url.Values{}
	query.Set("group", req.Group)
	query.Set("name", req.Name)
	query.Set("leverage", strconv.Itoa(req.Leverage))

	body := map[string]string{
		"PassMain":     req.PassMain,
		"PassInvestor": req.PassInvestor,
		"Email":        req.Email,
		"Country":      req.Country,
	}
	return s.call(ctx, http.MethodPost, "/api/user/add", query, body)
}

// Get fetches a trading account's record.
func (s *AccountService) Get(ctx context.Context, login uint64) (*ports.PlatformReply, error) {
	query := url.Values{}
	query.Set("login", strconv.FormatUint(login, 10))
	return s.call(ctx, http.MethodGet, "/api/user/get", query, nil)
}

// CheckPassword verifies an account's main password on the platform.
func (s *AccountService) CheckPassword(ctx context.Context, login uint64, password string) (*ports.PlatformReply, error) {
	body := map[string]string{
		"Login":    strconv.FormatUint(login, 10),
		"Type":     "main",
		"Password": password,
	}
	return s.call(ctx, http.MethodPost, "/api/user/check_password", nil, body)
}

// ChangePassword sets an account password of the given type (main/investor).
func (s *AccountService) ChangePassword(ctx context.Context, login uint64, passType, password string) (*ports.PlatformReply, error) {
	body := map[string]string{
		"Login":    strconv.FormatUint(login, 10),
		"Type":     passType,
		"Password": password,
	}
	return s.call(ctx, http.MethodPost, "/api/user/change_password", nil, body)
}

func (s *AccountService) call(ctx context.Context, method, path string, query url.Values, body any) (*ports.PlatformReply, error) {
	if err := s.session.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	resp, err := s.transport.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, apperror.ErrTransport(err)
	}

	var decoded struct {
		Retcode string          `json:"retcode"`
		Answer  json.RawMessage `json:"answer"`
	}
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, apperror.ErrInvalidResponse(string(resp.Body))
	}

	reply := &ports.PlatformReply{
		Retcode: decoded.Retcode,
		Ok:      retcodeOK(decoded.Retcode),
		Answer:  decoded.Answer,
		Raw:     json.RawMessage(resp.Body),
	}

	if !reply.Ok {
		s.log.Warn().
			Str("path", path).
			Str("retcode", decoded.Retcode).
			Msg("platform user call failed")
	}
	return reply, nil
}
