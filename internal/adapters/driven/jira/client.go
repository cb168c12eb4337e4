package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	apiPrefix = "/rest/api/3"
)

// Config holds the connection parameters for a Jira site.
type Config struct {
	// BaseURL is the site root, e.g. https://example.atlassian.net.
	BaseURL string

	// Email is the account email used with basic auth.
	Email string

	// APIToken is the API token (basic) or personal access token (bearer).
	APIToken string

	// AuthMethod defaults to basic.
	AuthMethod domain.AuthMethod

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond paces outgoing requests (default: 5).
	RequestsPerSecond float64
}

// ConfigFromSettings builds a client config from resolved settings.
func ConfigFromSettings(s *domain.Settings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Email:             s.Email,
		APIToken:          s.APIToken,
		AuthMethod:        s.AuthMethod,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// Client talks to the Jira REST API v3.
type Client struct {
	http        *http.Client
	baseURL     string
	email       string
	token       string
	authMethod  domain.AuthMethod
	rateLimiter *RateLimiter
}

// NewClient creates a Jira client. Bearer auth attaches the token through
// an oauth2 transport; basic auth sets credentials per request.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.APIToken == "" {
		return nil, ErrTokenRequired
	}
	if cfg.AuthMethod == "" {
		cfg.AuthMethod = domain.AuthMethodBasic
	}
	if !cfg.AuthMethod.IsValid() {
		return nil, fmt.Errorf("%w: auth method %q", domain.ErrInvalidInput, cfg.AuthMethod)
	}
	if cfg.AuthMethod.RequiresEmail() && cfg.Email == "" {
		return nil, ErrEmailRequired
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	var httpClient *http.Client
	if cfg.AuthMethod == domain.AuthMethodBearer {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout

	return &Client{
		http:        httpClient,
		baseURL:     baseURL,
		email:       cfg.Email,
		token:       cfg.APIToken,
		authMethod:  cfg.AuthMethod,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// BaseURL returns the site root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// browseURL returns the human-facing page of an issue.
func (c *Client) browseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// do sends a JSON request and decodes a JSON response into out.
// Non-2xx responses become *domain.RemoteError, 429 becomes *RateLimitError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authMethod == domain.AuthMethodBasic {
		req.SetBasicAuth(c.email, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.Debug("%s %s -> %d", method, path, resp.StatusCode)

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
