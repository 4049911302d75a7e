package integration

import (
	"crypto/md5" //nolint:gosec // matches the platform handshake
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"mt5-gateway/internal/service"
)

const (
	managerLogin    = uint64(1001)
	managerPassword = "Secret#123"
)

// balanceCall records one observed /api/trade/balance request.
type balanceCall struct {
	Method string
	Params url.Values
}

// fakePlatform emulates the trading platform WebAPI: the two-round manager
// handshake plus the balance endpoint, with call counters and failure knobs.
type fakePlatform struct {
	srv    *httptest.Server
	digest []byte

	mu             sync.Mutex
	startCalls     int
	balance        []balanceCall
	balanceRetcode string
	nextTicket     int64
	rejectGET      bool
}

func newFakePlatform() *fakePlatform {
	f := &fakePlatform{
		digest:         service.NewCredentialHasher().DeriveSecretDigest(managerPassword),
		balanceRetcode: "0 Done",
		nextTicket:     900001,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/start", f.handleStart)
	mux.HandleFunc("/api/auth/answer", f.handleAnswer)
	mux.HandleFunc("/api/trade/balance", f.handleBalance)

	f.srv = httptest.NewServer(mux)
	return f
}

func (f *fakePlatform) close() {
	f.srv.Close()
}

func (f *fakePlatform) handleStart(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.startCalls++
	f.mu.Unlock()
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"retcode":  "0 Done",
		"srv_rand": "00112233445566778899aabbccddeeff",
	})
}

func (f *fakePlatform) handleAnswer(w http.ResponseWriter, r *http.Request) {
	cliRand, err := hex.DecodeString(r.URL.Query().Get("cli_rand"))
	if err != nil {
		http.Error(w, "bad cli_rand", http.StatusBadRequest)
		return
	}
	sum := md5.Sum(append(append([]byte{}, f.digest...), cliRand...)) //nolint:gosec
	http.SetCookie(w, &http.Cookie{Name: "SessionID", Value: "integration-session", Path: "/"})
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"retcode":         "0 Done",
		"cli_rand_answer": hex.EncodeToString(sum[:]),
	})
}

func (f *fakePlatform) handleBalance(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rejectGET && r.Method == http.MethodGet {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	f.balance = append(f.balance, balanceCall{
		Method: r.Method,
		Params: r.URL.Query(),
	})

	retcode := f.balanceRetcode
	if retcode[0] != '0' {
		json.NewEncoder(w).Encode(map[string]any{"retcode": retcode}) //nolint:errcheck
		return
	}
	ticket := f.nextTicket
	f.nextTicket++
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"retcode": retcode,
		"answer":  map[string]any{"Ticket": strconv.FormatInt(ticket, 10)},
	})
}

// setBalanceRetcode switches the outcome of subsequent balance calls.
func (f *fakePlatform) setBalanceRetcode(retcode string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balanceRetcode = retcode
}

func (f *fakePlatform) setRejectGET(reject bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectGET = reject
}

func (f *fakePlatform) starts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.startCalls
}

func (f *fakePlatform) balanceCalls() []balanceCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]balanceCall, len(f.balance))
	copy(out, f.balance)
	return out
}
