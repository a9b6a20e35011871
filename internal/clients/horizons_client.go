package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"horizons/internal/models"
	"horizons/internal/query"
)

const (
	DefaultHorizonsURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	maxResponseBytes = 32 << 20
	maxErrorBody     = 512
)

type HorizonsClient interface {
	Fetch(ctx context.Context, req query.WireRequest) (string, error)
	Ping(ctx context.Context) error
}

type horizonsClient struct {
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	client    *http.Client
}

type HorizonsConfig struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

func NewHorizonsClient(config HorizonsConfig) HorizonsClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultHorizonsURL
	}
	if config.UserAgent == "" {
		config.UserAgent = "horizons-go/1.0"
	}
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}
	if config.Burst < 1 {
		config.Burst = 1
	}

	return &horizonsClient{
		baseURL:   config.BaseURL,
		userAgent: config.UserAgent,
		limiter:   rate.NewLimiter(limit, config.Burst),
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
	}
}

// Fetch sends one request and returns the reply text. It does not retry.
func (c *horizonsClient) Fetch(ctx context.Context, req query.WireRequest) (string, error) {
	params := url.Values{}
	for k, v := range req.Params() {
		params.Set(k, v)
	}
	return c.get(ctx, "fetch ephemeris", params)
}

// Ping asks Horizons for object data on the Sun without an ephemeris.
func (c *horizonsClient) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("format", "text")
	params.Set("COMMAND", "'10'")
	params.Set("OBJ_DATA", "'NO'")
	params.Set("MAKE_EPHEM", "'NO'")
	_, err := c.get(ctx, "ping", params)
	return err
}

func (c *horizonsClient) get(ctx context.Context, op string, params url.Values) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", classify(ctx, op, err)
	}

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", classify(ctx, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", classify(ctx, op, err)
	}

	if resp.StatusCode != http.StatusOK {
		text := strings.TrimSpace(string(body))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return "", &models.ServiceError{StatusCode: resp.StatusCode, Body: text}
	}

	return string(body), nil
}

// classify maps transport failures onto the timeout and cancellation kinds.
// The limiter refuses to wait past a deadline without the context having
// expired yet, which also counts as a timeout.
func classify(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return &models.CancelledError{Op: op, Err: err}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &models.TimeoutError{Op: op, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &models.TimeoutError{Op: op, Err: err}
	}
	if _, ok := ctx.Deadline(); ok && strings.Contains(err.Error(), "would exceed context deadline") {
		return &models.TimeoutError{Op: op, Err: err}
	}

	return fmt.Errorf("%s: execute request: %w", op, err)
}
