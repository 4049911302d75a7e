package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"mt5-gateway/config"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	authStartPath  = "/api/auth/start"
	authAnswerPath = "/api/auth/answer"

	clientChallengeLen = 16
)

// ManagerSessionService implements ports.ManagerSession: it owns the cookie
// store tied to one manager identity and amortizes the challenge-response
// handshake across calls via a freshness window.
type ManagerSessionService struct {
	transport ports.PlatformTransport
	hasher    *CredentialHasher
	store     ports.SessionStore
	log       zerolog.Logger

	login    uint64
	password string
	version  int
	agent    string
	ttl      time.Duration

	// mu guards validUntil and serializes handshakes: at most one handshake
	// per identity is in flight, concurrent callers block on it and reuse
	// the result.
	mu         sync.Mutex
	validUntil time.Time
	restored   bool
}

// NewManagerSession creates a session for the configured manager identity.
func NewManagerSession(
	transport ports.PlatformTransport,
	hasher *CredentialHasher,
	store ports.SessionStore,
	cfg config.PlatformConfig,
	log zerolog.Logger,
) *ManagerSessionService {
	return &ManagerSessionService{
		transport: transport,
		hasher:    hasher,
		store:     store,
		log:       log,
		login:     cfg.ManagerLogin,
		password:  cfg.ManagerPassword,
		version:   cfg.Version,
		agent:     cfg.Agent,
		ttl:       cfg.SessionTTL,
	}
}

// sessionSnapshot is the durable form of an authenticated session.
type sessionSnapshot struct {
	AuthenticatedAt time.Time       `json:"authenticated_at"`
	Cookies         json.RawMessage `json:"cookies"`
}

// EnsureAuthenticated returns immediately while the session is fresh;
// otherwise it runs the handshake. One attempt per call, no internal retry.
func (s *ManagerSessionService) EnsureAuthenticated(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.validUntil) {
		return nil
	}

	if !s.restored {
		s.restored = true
		if s.restoreSnapshot(ctx) {
			return nil
		}
	}

	if err := s.handshake(ctx); err != nil {
		s.validUntil = time.Time{}
		return err
	}

	now := time.Now()
	s.validUntil = now.Add(s.ttl)
	s.persistSnapshot(ctx, now)
	return nil
}

// Invalidate discards the in-memory freshness state and the persisted cookie
// store, forcing the next call to re-handshake.
func (s *ManagerSessionService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validUntil = time.Time{}
	if err := s.store.Clear(ctx, s.login); err != nil {
		s.log.Warn().Err(err).Uint64("manager", s.login).Msg("failed to clear stored session")
	}
}

// restoreSnapshot tries to resume a still-fresh session persisted by an
// earlier process invocation. Returns true when the session was resumed.
func (s *ManagerSessionService) restoreSnapshot(ctx context.Context) bool {
	blob, err := s.store.Get(ctx, s.login)
	if err != nil {
		s.log.Warn().Err(err).Uint64("manager", s.login).Msg("session store read failed, handshaking")
		return false
	}
	if blob == nil {
		return false
	}

	var snap sessionSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt session snapshot")
		return false
	}

	validUntil := snap.AuthenticatedAt.Add(s.ttl)
	if !time.Now().Before(validUntil) {
		return false
	}
	if err := s.transport.ImportCookies(snap.Cookies); err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable cookie snapshot")
		return false
	}

	s.validUntil = validUntil
	s.log.Debug().Uint64("manager", s.login).Time("valid_until", validUntil).Msg("manager session restored")
	return true
}

func (s *ManagerSessionService) persistSnapshot(ctx context.Context, authenticatedAt time.Time) {
	cookies, err := s.transport.ExportCookies()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to snapshot session cookies")
		return
	}
	blob, err := json.Marshal(sessionSnapshot{
		AuthenticatedAt: authenticatedAt,
		Cookies:         cookies,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode session snapshot")
		return
	}
	if err := s.store.Put(ctx, s.login, blob); err != nil {
		s.log.Warn().Err(err).Uint64("manager", s.login).Msg("failed to persist session snapshot")
	}
}

// handshake runs the two-round challenge-response exchange. Failure is
// terminal for the attempt; the caller decides whether to retry later.
func (s *ManagerSessionService) handshake(ctx context.Context) error {
	startQuery := url.Values{}
	startQuery.Set("version", strconv.Itoa(s.version))
	startQuery.Set("agent", s.agent)
	startQuery.Set("login", strconv.FormatUint(s.login, 10))
	startQuery.Set("type", "manager")

	startResp, err := s.transport.Do(ctx, http.MethodGet, authStartPath, startQuery, nil)
	if err != nil {
		return apperror.ErrTransport(err)
	}
	if startResp.Status != http.StatusOK {
		return apperror.ErrHandshakeStartFailed(fmt.Sprintf("http=%d", startResp.Status))
	}

	var start struct {
		Retcode string `json:"retcode"`
		SrvRand string `json:"srv_rand"`
	}
	if err := json.Unmarshal(startResp.Body, &start); err != nil {
		return apperror.ErrHandshakeStartFailed(fmt.Sprintf("invalid response: %.200s", string(startResp.Body)))
	}
	if !retcodeOK(start.Retcode) || start.SrvRand == "" {
		return apperror.ErrHandshakeStartFailed(fmt.Sprintf("retcode=%q", start.Retcode))
	}

	digest := s.hasher.DeriveSecretDigest(s.password)
	serverProof, err := s.hasher.ComputeServerProof(digest, start.SrvRand)
	if err != nil {
		return err
	}

	// Fresh local challenge per attempt; reuse would weaken the mutual proof.
	clientChallenge := make([]byte, clientChallengeLen)
	if _, err := rand.Read(clientChallenge); err != nil {
		return apperror.InternalError(fmt.Errorf("generating client challenge: %w", err))
	}

	answerQuery := url.Values{}
	answerQuery.Set("srv_rand_answer", serverProof)
	answerQuery.Set("cli_rand", hex.EncodeToString(clientChallenge))

	answerResp, err := s.transport.Do(ctx, http.MethodGet, authAnswerPath, answerQuery, nil)
	if err != nil {
		return apperror.ErrTransport(err)
	}
	if answerResp.Status != http.StatusOK {
		return apperror.ErrHandshakeAnswerFailed(fmt.Sprintf("http=%d", answerResp.Status))
	}

	var answer struct {
		Retcode       string `json:"retcode"`
		CliRandAnswer string `json:"cli_rand_answer"`
	}
	if err := json.Unmarshal(answerResp.Body, &answer); err != nil {
		return apperror.ErrHandshakeAnswerFailed(fmt.Sprintf("invalid response: %.200s", string(answerResp.Body)))
	}
	if !retcodeOK(answer.Retcode) || answer.CliRandAnswer == "" {
		return apperror.ErrHandshakeAnswerFailed(fmt.Sprintf("retcode=%q", answer.Retcode))
	}

	expected := s.hasher.ComputeExpectedClientProof(digest, clientChallenge)
	if !s.hasher.VerifyClientProof(expected, answer.CliRandAnswer) {
		return apperror.ErrHandshakeAnswerFailed("server counter-proof mismatch")
	}

	s.log.Info().Uint64("manager", s.login).Msg("manager handshake completed")
	return nil
}
