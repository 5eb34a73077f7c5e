// Package integrations is the HTTP client of the companion services (health, telegram bot, products).
package integrations

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
)

const (
	defaultTimeout     = 5 * time.Second
	defaultMaxFailures = 3
	defaultOpenTimeout = 30 * time.Second
	maxBodyBytes       = 1 << 20
)

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("integration unavailable")

// Options configure a Client.
type Options struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
}

// Client performs GET requests against one base URL behind a circuit breaker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*service.APIEnvelope]
	logger     *slog.Logger
}

// NewClient builds a client. Zero options fall back to defaults.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = defaultMaxFailures
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = defaultOpenTimeout
	}

	maxFailures := opts.MaxFailures
	breaker := gobreaker.NewCircuitBreaker[*service.APIEnvelope](gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{Timeout: opts.Timeout},
		breaker:    breaker,
		logger:     logger,
	}
}

// NewIntegrationClient creates the companion services client from configuration
func NewIntegrationClient(cfg *config.Config, logger *slog.Logger) service.IntegrationClient {
	ic := cfg.Integrations

	return NewClient(Options{
		Name:        "integrations",
		BaseURL:     ic.BaseURL,
		Timeout:     ic.Timeout,
		MaxFailures: ic.Breaker.MaxFailures,
		OpenTimeout: ic.Breaker.OpenTimeout,
	}, logger)
}

// Get fetches path and decodes the {success, data, message} envelope.
// A non-2xx status or an undecodable body counts as a failure for the breaker.
func (c *Client) Get(ctx context.Context, path string) (*service.APIEnvelope, error) {
	if c.baseURL == "" {
		return nil, errors.New("integration base URL is not configured")
	}

	envelope, err := c.breaker.Execute(func() (*service.APIEnvelope, error) {
		return c.do(ctx, path)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Wrapf(ErrUnavailable, "%s: %v", path, err)
	}
	if err != nil {
		return nil, err
	}

	return envelope, nil
}

func (c *Client) do(ctx context.Context, path string) (*service.APIEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s failed", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response failed", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}

	var envelope service.APIEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrapf(err, "decode %s response failed", path)
	}

	return &envelope, nil
}
