// Package waifu is the client for the waifu.pics image API.
package waifu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public image API.
const DefaultBaseURL = "https://api.waifu.pics"

const (
	defaultTimeout   = 10 * time.Second
	defaultInterval  = 500 * time.Millisecond
	maxResponseBytes = 64 << 10
	maxImageBytes    = 32 << 20
	userAgent        = "swipewaifu"
	acceptJSON       = "application/json"
)

var (
	// ErrNetwork covers transport failures and non-2xx responses.
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse means the body was not JSON or had no url.
	ErrMalformedResponse = errors.New("malformed response")
)

// Client fetches random image URLs. It holds no state apart from the HTTP
// client and the outbound limiter, so one Client may be shared.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL points the client at another API root.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRequestInterval sets the minimum spacing between outbound requests.
// Zero or negative disables limiting.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithClock overrides the clock used to stamp fetched images.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(rate.Every(defaultInterval), 1),
		timeout: defaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client from the loaded configuration.
func NewFromConfig() *Client {
	return NewClient(
		WithBaseURL(config.Get("api_base_url", DefaultBaseURL)),
		WithTimeout(config.GetDuration("request_timeout", defaultTimeout)),
		WithRequestInterval(config.GetDuration("request_interval", defaultInterval)),
	)
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the URL requested for mode and category. Restricted mode
// ignores category.
func (c *Client) Endpoint(mode domain.Mode, category string) string {
	if !mode.IsValid() {
		mode = domain.ModeStandard
	}
	return fmt.Sprintf("%s/%s/%s", c.baseURL, mode, domain.ResolveCategory(mode, category))
}

type imageResponse struct {
	URL string `json:"url"`
}

// Fetch requests one random image.
func (c *Client) Fetch(ctx context.Context, mode domain.Mode, category string) (domain.Image, error) {
	if !mode.IsValid() {
		mode = domain.ModeStandard
	}
	category = domain.ResolveCategory(mode, category)

	body, err := c.get(ctx, c.Endpoint(mode, category), acceptJSON, maxResponseBytes)
	if err != nil {
		return domain.Image{}, err
	}

	var resp imageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Image{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	img, err := domain.NewImage(resp.URL, category, mode, c.now())
	if err != nil {
		return domain.Image{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return img, nil
}

// FetchBytes downloads the image body at url. It shares the client's limiter
// and timeout.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url, "image/*", maxImageBytes)
}

func (c *Client) get(ctx context.Context, url, accept string, limit int64) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait: %v", ErrNetwork, err)
		}
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s returned status %d", ErrNetwork, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return body, nil
}
