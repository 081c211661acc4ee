// Package api implements the hardened HTTP client for the Planar Standard
// backend. Every call goes through the same pipeline: client-side rate
// limiting, transport scheme enforcement, secure headers, response
// content-type validation, bounded JSON parsing, and automatic session
// teardown on an authentication failure.
//
// The rate limiter and the scheme check are advisory, client-controlled
// mitigations; they are UX guards, not a security boundary. The backend
// owns the real enforcement.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PlanarStandardMTG/planar-cli/internal/logging"
	"github.com/PlanarStandardMTG/planar-cli/internal/ratelimit"
	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
	"github.com/PlanarStandardMTG/planar-cli/internal/session"
)

const (
	// rateLimitKey is the shared throttle bucket for generic API calls.
	rateLimitKey = "api-call"

	// maxResponseBytes caps how much of a response body the JSON helpers
	// will read, bounding memory against a hostile or broken server.
	maxResponseBytes = 10 * 1024 * 1024
)

// ModeProduction enables HTTPS-only transport enforcement; any other mode
// (development) relaxes it.
const ModeProduction = "production"

// HTTPClient is the secure request client. The zero value is not usable;
// construct it with NewHTTPClient.
//
// No request timeout is set: a stuck request suspends its caller until the
// context is cancelled, it never blocks other flows. Requests carry no
// cookie jar; authentication travels only in the Authorization header.
type HTTPClient struct {
	baseURL string
	mode    string
	client  *http.Client
	store   *session.Store
	limiter *ratelimit.Limiter
	log     logging.Logger

	// onUnauthorized runs after a 401 has cleared the session, letting the
	// UI layer route the user back to the login flow.
	onUnauthorized func()
}

// NewHTTPClient builds the secure client. limiter gates every request
// under the shared api-call key; store supplies the bearer token and is
// cleared on 401 responses.
func NewHTTPClient(baseURL, mode string, store *session.Store, limiter *ratelimit.Limiter, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		mode:    mode,
		client:  &http.Client{},
		store:   store,
		limiter: limiter,
		log:     log,
	}
}

// SetOnUnauthorized registers the hook invoked after a 401 tears down the
// local session.
func (c *HTTPClient) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// secureHeaders builds the base header set: JSON content type, the
// X-Requested-With CSRF defense-in-depth marker, cache suppression, and
// the bearer token when a valid session exists.
func (c *HTTPClient) secureHeaders(ctx context.Context) (http.Header, error) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Cache-Control", "no-store")

	token, err := c.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h, nil
}

// Request performs one hardened HTTP call and returns the raw response for
// status handling by the caller. Request bodies that are maps or slices are
// scrubbed of prototype-pollution keys before serialization.
//
// A 401 response clears the stored session token and fires the
// unauthorized hook before the response is returned.
func (c *HTTPClient) Request(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if !c.limiter.Allow(rateLimitKey) {
		return nil, ErrRateLimited
	}

	url := c.baseURL + path
	if c.mode == ModeProduction && !strings.HasPrefix(url, "https://") {
		return nil, ErrInsecureTransport
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(securex.SanitizeBody(body))
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	headers, err := c.secureHeaders(ctx)
	if err != nil {
		return nil, err
	}
	req.Header = headers

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "error", err.Error())
		return nil, ErrNetwork
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		resp.Body.Close()
		return nil, ErrUnexpectedContentType
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.log.Error(ctx, "failed to clear session after 401", "error", clearErr.Error())
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	return resp, nil
}

// decode drains resp into out, enforcing the response size cap and
// translating non-2xx statuses into sanitized errors. out may be nil when
// the caller does not need the body.
func (c *HTTPClient) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return ErrNetwork
	}
	if len(raw) > maxResponseBytes {
		return ErrResponseTooLarge
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &payload)
		return &ServerError{
			Status:  resp.StatusCode,
			Message: securex.SanitizeText(payload.Message),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid response format: %w", err)
	}
	return nil
}

// get performs a hardened GET and decodes the JSON response into out.
func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	resp, err := c.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

// post performs a hardened POST and decodes the JSON response into out.
func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.Request(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

// del performs a hardened DELETE and decodes the JSON response into out.
func (c *HTTPClient) del(ctx context.Context, path string, out any) error {
	resp, err := c.Request(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}
