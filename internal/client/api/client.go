// Package api implements the MealMate REST client. A single Client instance
// is shared by all feature calls; it centralizes outbound request shaping
// (base address, content type, credential header) and inbound failure
// handling (timeouts, status classification, 401 credential purge).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Yashraj9595/mealmate/internal/common"
)

// DefaultRequestTimeout bounds every request issued through the client.
const DefaultRequestTimeout = 10 * time.Second

// TokenSource supplies the current session credential before each request.
// An empty string means "no credential", which is not an error at this layer;
// the request is simply sent unauthenticated. Threading the credential through
// a provider function keeps the client free of mutable header state shared
// between concurrent session transitions.
type TokenSource func(ctx context.Context) string

// AuthFailureHook runs whenever any endpoint answers 401, before the error is
// returned to the caller. The session layer uses it to purge the persisted
// credential regardless of which feature call tripped it.
type AuthFailureHook func(ctx context.Context)

type Client struct {
	baseURL       string
	http          *http.Client
	tokens        TokenSource
	onAuthFailure AuthFailureHook
}

type Option func(*Client)

// WithTokenSource installs the credential provider consulted on each request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithAuthFailureHook installs the hook invoked on any 401 response.
func WithAuthFailureHook(h AuthFailureHook) Option {
	return func(c *Client) { c.onAuthFailure = h }
}

// WithHTTPClient replaces the underlying http.Client. Intended for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New constructs a Client for the given base address. The base address and
// default content type are fixed at construction; a zero timeout selects
// DefaultRequestTimeout.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the backend's uniform response body: {success, data?, message?}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues one request and returns the raw response body after uniform
// failure handling. Callers decode the body themselves.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		if token := c.tokens(ctx); token != "" {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Err: ErrUnavailable}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onAuthFailure != nil {
			c.onAuthFailure(ctx)
		}
		return nil, &CallError{Status: resp.StatusCode, Message: serverMessage(raw), Err: ErrUnauthorized}
	}

	if resp.StatusCode >= 500 {
		return nil, &CallError{Status: resp.StatusCode, Message: serverMessage(raw), Err: ErrServer}
	}
	if resp.StatusCode >= 400 {
		return nil, &CallError{Status: resp.StatusCode, Message: serverMessage(raw), Err: ErrRejected}
	}

	return raw, nil
}

// callData issues a request and decodes the envelope's data field into out.
// A 2xx body with success=false is reported as a rejected call so callers
// never have to inspect the flag themselves.
func (c *Client) callData(ctx context.Context, method, path string, payload, out any) error {
	raw, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &CallError{Message: "invalid response from server", Err: ErrServer}
	}
	if !env.Success {
		return &CallError{Message: env.Message, Err: ErrRejected}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &CallError{Message: "invalid response from server", Err: ErrServer}
		}
	}
	return nil
}

func (c *Client) transportError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &CallError{Err: ErrTimeout}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &CallError{Err: ErrTimeout}
	}
	return &CallError{Err: ErrUnavailable}
}

func serverMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}
