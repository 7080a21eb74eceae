// Package apiclient is the console's authenticated client for the backend
// REST API. Every call reads the access token from the injected credential
// store, speaks JSON, and reports non-success responses as *domain.APIError.
// Calls are never retried and carry no timeout beyond the caller's context.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
	"github.com/tablekit/restaurant-console/internal/pkg/metrics"
)

const (
	apiPrefix       = "/api/v1"
	headerRequestID = "X-Request-ID"
)

// Client talks to one backend origin on behalf of the stored session.
type Client struct {
	baseURL string
	store   ports.CredentialStore
	http    *http.Client
	log     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a client for baseURL (e.g. "http://localhost:8080").
func New(baseURL string, store ports.CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http:    http.DefaultClient,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes a single backend call.
type Request struct {
	Method string
	// Endpoint is appended verbatim to the base URL, query string included.
	Endpoint string
	// Route labels metrics; it defaults to Endpoint and should not carry ids.
	Route string
	// Body is JSON encoded when non-nil.
	Body any
	// Header is merged over the defaults. Authorization is always derived
	// from the credential store and cannot be supplied here.
	Header http.Header
}

// Do issues req and decodes a successful JSON response into T.
func Do[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	raw, err := c.send(ctx, req)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s %s response: %w", req.method(), req.Endpoint, err)
	}
	return out, nil
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

func (r Request) route() string {
	if r.Route != "" {
		return r.Route
	}
	if i := strings.IndexByte(r.Endpoint, '?'); i >= 0 {
		return r.Endpoint[:i]
	}
	return r.Endpoint
}

func (c *Client) send(ctx context.Context, r Request) ([]byte, error) {
	method := r.method()

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, r.Endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+r.Endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, r.Endpoint, err)
	}
	c.applyHeaders(ctx, req, r.Header)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, r.route(), "error", start)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, r.Endpoint, ctxErr)
		}
		c.log.Warn().Err(err).Str("method", method).Str("endpoint", r.Endpoint).Msg("backend unreachable")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUnreachable, method, r.Endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.observe(method, r.route(), strconv.Itoa(resp.StatusCode), start)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", domain.ErrUnreachable, method, r.Endpoint, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("endpoint", r.Endpoint).
		Int("status", resp.StatusCode).
		Str("request_id", req.Header.Get(headerRequestID)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp, raw)
	}
	return raw, nil
}

func (c *Client) applyHeaders(ctx context.Context, req *http.Request, extra http.Header) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())

	for k, vs := range extra {
		req.Header[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}

	req.Header.Del("Authorization")
	if token, ok := c.store.AccessToken(ctx); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) observe(method, route, code string, start time.Time) {
	metrics.APIRequestsTotal.WithLabelValues(method, route, code).Inc()
	metrics.APIRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// errorFromResponse turns a non-success response into an APIError. The
// message is taken, in order, from:
//  1. a JSON body's "error" (or "message") field, or a JSON string body;
//  2. the raw body text when the body is not JSON;
//  3. "HTTP <status>: <status text>".
func errorFromResponse(resp *http.Response, raw []byte) *domain.APIError {
	status := resp.StatusCode
	text := statusText(resp)
	trimmed := bytes.TrimSpace(raw)

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err == nil {
		switch v := decoded.(type) {
		case map[string]any:
			if msg, ok := v["error"].(string); ok && msg != "" {
				return domain.NewAPIError(status, text, msg)
			}
			if msg, ok := v["message"].(string); ok && msg != "" {
				return domain.NewAPIError(status, text, msg)
			}
		case string:
			return domain.NewAPIError(status, text, strings.TrimSpace(v))
		}
		return domain.NewAPIError(status, text, "")
	}

	return domain.NewAPIError(status, text, string(trimmed))
}

func statusText(resp *http.Response) string {
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
