package paylane

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/internal/platform/config"
)

// Version is sent in the User-Agent header.
const Version = "0.1.0"

// Environment selects the API host used when no base URL is given.
type Environment string

const (
	LiveMode Environment = "live_mode"
	TestMode Environment = "test_mode"
)

// BaseURL returns the API host of e. Unknown environments use the test host.
func (e Environment) BaseURL() string {
	if e == LiveMode {
		return "https://live.paylane.com"
	}
	return "https://test.paylane.com"
}

// Client talks to the provider's HTTP API. It is safe for concurrent use once
// constructed.
type Client struct {
	apiKey            string
	baseURL           string
	httpClient        *http.Client
	logger            *slog.Logger
	idempotencyKeys   bool
	validateResponses bool
	newIdempotencyKey func() string

	CheckoutSessions *CheckoutSessionsService
}

type Option func(*Client)

func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = strings.TrimSpace(key) }
}

// WithEnvironment points the client at the live or test host. WithBaseURL wins
// when both are given.
func WithEnvironment(env Environment) Option {
	return func(c *Client) {
		if c.baseURL == "" || c.baseURL == LiveMode.BaseURL() || c.baseURL == TestMode.BaseURL() {
			c.baseURL = env.BaseURL()
		}
	}
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger for per-request debug lines. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIdempotencyKeys controls whether POST requests carry a fresh
// Idempotency-Key header. Enabled by default.
func WithIdempotencyKeys(enabled bool) Option {
	return func(c *Client) { c.idempotencyKeys = enabled }
}

// WithResponseValidation makes every decoded response go through Validate.
// Disabled by default so newer server payloads keep working.
func WithResponseValidation(enabled bool) Option {
	return func(c *Client) { c.validateResponses = enabled }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:           TestMode.BaseURL(),
		httpClient:        &http.Client{Timeout: 30 * time.Second},
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		idempotencyKeys:   true,
		newIdempotencyKey: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.CheckoutSessions = &CheckoutSessionsService{client: c}
	return c
}

// NewClientFromEnv builds a client from PAYLANE_API_KEY, PAYLANE_ENVIRONMENT,
// PAYLANE_BASE_URL and PAYLANE_HTTP_TIMEOUT. Options are applied afterwards.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.LoadClientConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("paylane: %w", err)
	}
	base := []Option{
		WithAPIKey(cfg.APIKey),
		WithEnvironment(Environment(cfg.Environment)),
		WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	}
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	return NewClient(append(base, opts...)...), nil
}

// BaseURL reports the host requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends in (when non-nil) and decodes a 2xx body into a new PT.
func do[T any, PT core.ModelPtr[T]](ctx context.Context, c *Client, method, path string, in core.Model) (PT, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var body io.Reader
	if in != nil {
		b, err := core.Serialize(in)
		if err != nil {
			return nil, fmt.Errorf("paylane: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("paylane: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "paylane-go/"+Version)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost && c.idempotencyKeys {
		req.Header.Set("Idempotency-Key", c.newIdempotencyKey())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "paylane request failed", "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("paylane: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("paylane: read response: %w", err)
	}
	c.logger.DebugContext(ctx, "paylane request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	out, err := core.Deserialize[T, PT](raw)
	if err != nil {
		return nil, fmt.Errorf("paylane: decode response: %w", err)
	}
	if c.validateResponses {
		if err := out.Validate(); err != nil {
			return nil, fmt.Errorf("paylane: invalid response: %w", err)
		}
	}
	return out, nil
}
