package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"agendagol-cli/config"
)

// Client talks to the five AgendaGol services. Each service is independently
// versioned and addressed, so the client carries one base URL per service
// rather than a single root. Safe for concurrent use once configured.
type Client struct {
	HTTP                *http.Client
	AuthBaseURL         string
	RolesBaseURL        string
	FieldsBaseURL       string
	ReservationsBaseURL string
	DashboardBaseURL    string
	UserAgent           string

	// OnAuthExpired runs when a call comes back 401, after the in-memory
	// token has been dropped. It fires once per dropped token even when
	// several concurrent calls see the same 401. Used to clear persisted
	// credentials. Set before issuing requests.
	OnAuthExpired func()

	mu          sync.Mutex
	accessToken string
}

func NewClient(cfg config.Config) *Client {
	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HTTP:                &http.Client{Timeout: timeout},
		AuthBaseURL:         cfg.Services.AuthURL,
		RolesBaseURL:        cfg.Services.RolesURL,
		FieldsBaseURL:       cfg.Services.FieldsURL,
		ReservationsBaseURL: cfg.Services.ReservationsURL,
		DashboardBaseURL:    cfg.Services.DashboardURL,
		UserAgent:           cfg.HTTP.UserAgent,
	}
}

func (c *Client) newAuthRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	return c.newRequest(ctx, c.AuthBaseURL, method, path, query, payload)
}

func (c *Client) newRolesRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	return c.newRequest(ctx, c.RolesBaseURL, method, path, query, payload)
}

func (c *Client) newFieldsRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	return c.newRequest(ctx, c.FieldsBaseURL, method, path, query, payload)
}

func (c *Client) newReservationsRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	return c.newRequest(ctx, c.ReservationsBaseURL, method, path, query, payload)
}

func (c *Client) newDashboardRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	return c.newRequest(ctx, c.DashboardBaseURL, method, path, query, payload)
}

func (c *Client) newRequest(ctx context.Context, baseURL, method, path string, query url.Values, payload any) (*http.Request, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimPrefix(path, "/")
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + trimmed
	if query != nil {
		base.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// SetAccessToken installs the bearer token used on subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// AccessToken returns the current bearer token, empty when unauthenticated.
func (c *Client) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

// dropAccessToken clears the token and reports whether one was present, so
// concurrent 401s invalidate the session exactly once.
func (c *Client) dropAccessToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	had := c.accessToken != ""
	c.accessToken = ""
	return had
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return c.fail(resp.StatusCode, body)
	}

	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func (c *Client) doStatus(req *http.Request) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return c.fail(resp.StatusCode, body)
	}
	return nil
}

// fail classifies the response and, on 401, invalidates the session: the
// token is cleared so no further call goes out half-authenticated, then the
// expiry hook runs. Only the call that actually drops the token fires the
// hook, so concurrent 401s don't repeat it.
func (c *Client) fail(status int, body []byte) error {
	err := normalizeError(status, body)
	if status == http.StatusUnauthorized && c.dropAccessToken() {
		if c.OnAuthExpired != nil {
			c.OnAuthExpired()
		}
	}
	return err
}
