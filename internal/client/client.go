// Package client is the typed HTTP transport for the AlumniSphere platform
// API. It owns base-URL handling, bearer-token attachment, JSON decoding and
// the translation of failures into the error tiers the service layer
// distinguishes: connectivity failures, rejected requests and everything else.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// apiPrefix is where the platform mounts its REST resources.
const apiPrefix = "/api/v1"

const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for outgoing requests.
// apperrors.ErrNoStoredToken means "no session": the request goes out without
// an Authorization header and the server's 401 is surfaced as-is.
type TokenSource interface {
	Token() (string, error)
}

// Options configure a Client.
type Options struct {
	// BaseURL is the platform origin without the /api/v1 prefix.
	BaseURL string
	// Timeout bounds each request. Zero selects the 30s default.
	Timeout time.Duration
	// Tokens supplies the bearer token. May be nil for anonymous-only use.
	Tokens TokenSource
	Logger zerolog.Logger
}

// Client performs requests against the platform API.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger zerolog.Logger
}

// New creates a Client. Responses are never served from a cache and no
// cookies are carried; authentication is bearer-token only.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/") + apiPrefix).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetCookieJar(nil)

	return &Client{
		http:   httpClient,
		tokens: opts.Tokens,
		logger: opts.Logger,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, query, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, nil, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, nil, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, nil, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one request through the shared pipeline.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, query url.Values, out interface{}) error {
	req, requestID, err := c.newRequest(ctx)
	if err != nil {
		return err
	}

	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("requestId", requestID).
			Str("method", method).
			Str("path", path).
			Msg("Request never reached the server")
		return translateTransportError(err)
	}

	c.logger.Debug().
		Str("requestId", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("Request completed")

	if resp.IsError() {
		return c.rejectedError(resp, requestID)
	}
	return nil
}

// newRequest builds a request with the shared headers attached: a generated
// request id and, when a session exists, the bearer token.
func (c *Client) newRequest(ctx context.Context) (*resty.Request, string, error) {
	requestID := uuid.NewString()

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)

	token, err := c.bearerToken()
	if err != nil {
		return nil, "", err
	}
	if token != "" {
		req.SetAuthToken(token)
	}

	return req, requestID, nil
}

// bearerToken resolves the stored token. No stored session is not an error:
// the request simply goes out anonymous.
func (c *Client) bearerToken() (string, error) {
	if c.tokens == nil {
		return "", nil
	}

	token, err := c.tokens.Token()
	if errors.Is(err, apperrors.ErrNoStoredToken) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading stored token: %w", err)
	}
	return token, nil
}

// rejectedError turns a non-2xx response into an APIError carrying the
// best-effort server message.
func (c *Client) rejectedError(resp *resty.Response, requestID string) error {
	message, code := parseErrorBody(resp.Body())

	c.logger.Debug().
		Str("requestId", requestID).
		Int("status", resp.StatusCode()).
		Str("serverMessage", message).
		Msg("Request rejected")

	return apperrors.NewAPIError(resp.StatusCode(), message, code)
}

// translateTransportError classifies a failure that produced no response.
// Deliberate cancellation is handed back untouched; timeouts and everything
// else become the connectivity-tier sentinels.
func translateTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.NewCustomError(apperrors.ErrRequestTimeout, "the server took too long to respond")
	}

	return apperrors.NewCustomError(apperrors.ErrConnectivity, "could not reach the server, check your connection")
}

// parseErrorBody extracts a human-readable message and optional error code
// from a rejection body. The platform responds FastAPI-style: "detail" holds
// either a plain string or a list of validation issues; older endpoints use
// "message" or "error".
func parseErrorBody(body []byte) (message, code string) {
	payload := map[string]interface{}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", ""
	}

	code = cast.ToString(payload["code"])

	if detail, ok := payload["detail"]; ok {
		switch d := detail.(type) {
		case string:
			return d, code
		case []interface{}:
			msgs := make([]string, 0, len(d))
			for _, item := range d {
				if issue, ok := item.(map[string]interface{}); ok {
					if msg := cast.ToString(issue["msg"]); msg != "" {
						msgs = append(msgs, msg)
					}
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; "), code
			}
		default:
			if msg := cast.ToString(detail); msg != "" {
				return msg, code
			}
		}
	}

	if msg := cast.ToString(payload["message"]); msg != "" {
		return msg, code
	}
	return cast.ToString(payload["error"]), code
}
