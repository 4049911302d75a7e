package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"mt5-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Client implements ports.PlatformTransport over a persistent HTTP connection
// with an attached cookie store. Remote 4xx/5xx are returned as data; only
// dispatch failures (DNS, TLS, timeout) surface as errors.
type Client struct {
	base *url.URL
	agent string
	jar  *cookiejar.Jar
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a platform transport for the given base URL.
// Redirects are never followed: platform responses are never redirects, and
// following one would leak the session cookie cross-origin.
func NewClient(baseURL, agent string, connectTimeout, requestTimeout time.Duration, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing platform base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: connectTimeout,
		ForceAttemptHTTP2:   false,
	}

	return &Client{
		base:  base,
		agent: agent,
		jar:   jar,
		http: &http.Client{
			Transport: transport,
			Jar:       jar,
			Timeout:   requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}, nil
}

// Do performs one request against base URL + path. A non-nil body is sent as
// JSON. The cookie store is read and written on every call.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*ports.PlatformResponse, error) {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("building platform request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Connection", "Keep-Alive")
	req.Header.Set("User-Agent", c.agent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform request %s %s: %w", method, u.Redacted(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading platform response %s %s: %w", method, u.Redacted(), err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("platform call completed")

	return &ports.PlatformResponse{
		Status:     resp.StatusCode,
		Body:       raw,
		RequestURL: u.String(),
		Method:     method,
	}, nil
}

// storedCookie is the durable representation of one session cookie.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
	Secure  bool      `json:"secure,omitempty"`
}

// ExportCookies snapshots the cookies held for the platform base URL.
func (c *Client) ExportCookies() ([]byte, error) {
	cookies := c.jar.Cookies(c.base)
	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Path:    ck.Path,
			Domain:  ck.Domain,
			Expires: ck.Expires,
			Secure:  ck.Secure,
		})
	}
	blob, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encoding cookie snapshot: %w", err)
	}
	return blob, nil
}

// ImportCookies restores a snapshot produced by ExportCookies into the jar.
func (c *Client) ImportCookies(blob []byte) error {
	var stored []storedCookie
	if err := json.Unmarshal(blob, &stored); err != nil {
		return fmt.Errorf("decoding cookie snapshot: %w", err)
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:    s.Name,
			Value:   s.Value,
			Path:    s.Path,
			Domain:  s.Domain,
			Expires: s.Expires,
			Secure:  s.Secure,
		})
	}
	c.jar.SetCookies(c.base, cookies)
	return nil
}
