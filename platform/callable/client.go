package callable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/httpkit"
)

// TokenSource returns the identity token attached to each call.
// An empty token sends the call unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

// Client invokes callables over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets the identity token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) { return token, nil }
}

// NewClient creates a client for callables mounted under baseURL,
// e.g. "https://api.example.com/api/v1/callable".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type responseEnvelope struct {
	Result json.RawMessage    `json:"result"`
	Error  *httpkit.ErrorBody `json:"error"`
}

// Call invokes the named callable with data and decodes the result into result.
// Failures are returned as *apperr.Error with the kind reported by the server.
func (c *Client) Call(ctx context.Context, name string, data, result any) error {
	payload, err := json.Marshal(struct {
		Data any `json:"data"`
	}{Data: data})
	if err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, "encode callable request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+name, bytes.NewReader(payload))
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create callable request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return apperr.Wrap(apperr.KindUnauthenticated, "resolve identity token", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return apperr.Wrap(apperr.KindDeadlineExceeded, "callable "+name+" timed out", err)
		}
		return apperr.Wrap(apperr.KindInternal, "callable "+name+" request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "read callable response", err)
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apperr.Wrap(apperr.KindInternal, fmt.Sprintf("callable %s: unexpected response (status %d)", name, resp.StatusCode), err)
	}

	if envelope.Error != nil {
		return apperr.New(apperr.ParseKind(envelope.Error.Status), envelope.Error.Message).WithDetails(envelope.Error.Details)
	}
	if resp.StatusCode != http.StatusOK {
		return apperr.Internal(fmt.Sprintf("callable %s: unexpected status %d", name, resp.StatusCode))
	}

	if result == nil || len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return apperr.Wrap(apperr.KindInternal, "decode callable result", err)
	}
	return nil
}
