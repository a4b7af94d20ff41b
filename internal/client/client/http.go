package client

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

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/jobhub/internal/buildinfo"
)

const (
	RequestIDHeaderName = "X-Request-ID"

	loginPath  = "/login"
	signupPath = "/signup"

	maxBodySize = 1 << 20
)

var ErrInvalidBaseURL = errors.New("invalid base url")

// HTTPClient talks to the authentication service over JSON/HTTP.
// It is safe for concurrent use.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	newID     func() string
}

// NewHTTPClient creates a client for the service at baseURL. Each request is
// bounded by timeout and outbound requests are limited to limit per second
// with the given burst; a non-positive limit disables limiting.
func NewHTTPClient(baseURL string, timeout time.Duration, limit float64, burst int) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	lim := rate.NewLimiter(rate.Inf, 0)
	if limit > 0 {
		if burst < 1 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(limit), burst)
	}

	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		limiter:   lim,
		userAgent: buildinfo.UserAgent(),
		newID:     func() string { return uuid.NewString() },
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*User, error) {
	var resp loginResponse
	if err := c.post(ctx, loginPath, loginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, fmt.Errorf("%w: login response has no user", ErrMalformedResponse)
	}
	return resp.User, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, password string) error {
	var resp messageResponse
	return c.post(ctx, signupPath, signupRequest{Username: username, Email: email, Password: password}, &resp)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// post sends body as JSON to path and decodes a 2xx reply into dst.
// An empty 2xx body leaves dst untouched.
func (c *HTTPClient) post(ctx context.Context, path string, body any, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeaderName, c.newID())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %w", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: reading %s response: %w", ErrUnavailable, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{StatusCode: resp.StatusCode}
		var m messageResponse
		if json.Unmarshal(raw, &m) == nil {
			se.Message = m.Message
		}
		return se
	}

	if dst == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: decoding %s response: %w", ErrMalformedResponse, path, err)
	}
	return nil
}
