// ABOUTME: HTTP client for the Orincore site backend API
// ABOUTME: Wraps REST calls with bearer auth and typed error handling

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TokenSource supplies the bearer token for privileged requests.
// It is read at request-construction time, so a login or logout between
// calls takes effect on the next request.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token. Useful in tests and
// one-shot commands.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// ErrNetwork marks transport failures: the request never produced an HTTP
// response. Distinct from server-rejected errors so the UI can show a
// generic network message.
var ErrNetwork = errors.New("network error")

// ErrUnauthorized marks a 401 response. Callers must not clear a persisted
// token on this error; the session may still be valid for a retry.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a server-rejected request: HTTP non-OK with an optional message
// from the response body.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Unwrap maps 401 responses to ErrUnauthorized for errors.Is checks.
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// ErrorMessage maps an error onto the user-facing message for one
// operation: the server's own message when it sent one, a generic network
// message for transport failures, else the per-operation fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrNetwork) {
		return "Network error"
	}
	return fallback
}

// Client is the API client for the Orincore site backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client with the given base URL and token source.
func New(baseURL string, tokens TokenSource) *Client {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// newRequest builds a request against the configured base URL. When authed
// is set and a token is present, it is attached as a bearer credential.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, authed bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// handleRequestError converts transport and context errors into the
// network error class.
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("%w: request canceled", ErrNetwork)
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: request timed out", ErrNetwork)
	}
	return fmt.Errorf("%w: cannot connect to backend at %s: %v", ErrNetwork, c.baseURL, err)
}

// errorBody is the error envelope the backend uses. The message may be
// nested ({"error":{"message":...}}) or flat ({"error":"..."}).
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

// handleErrorResponse parses a non-OK response into an *Error, surfacing
// the server message when one is present.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Error) == 0 {
		return apiErr
	}

	var flat string
	if err := json.Unmarshal(body.Error, &flat); err == nil {
		apiErr.Message = flat
		return apiErr
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		apiErr.Message = nested.Message
	}
	return apiErr
}

// doJSON executes the request and decodes a JSON body into out on HTTP OK.
// Pass a nil out to discard the body.
func (c *Client) doJSON(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.handleErrorResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}
