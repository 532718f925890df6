// Package catalog implements the HTTP client for the public university
// directory service (universities.hipolabs.com).
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/edudata/unidex/internal/models"
	srvErrors "github.com/edudata/unidex/pkg/errors"
)

const (
	DefaultBaseURL    = "http://universities.hipolabs.com/search"
	DefaultTimeout    = 30 * time.Second
	DefaultAttempts   = 3
	DefaultBackoff    = 1500 * time.Millisecond
	DefaultMultiplier = 1.5
)

// Config controls the endpoint and the retry policy of a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// MaxAttempts is the total number of tries per country, first call
	// included.
	MaxAttempts uint
	// InitialBackoff is the delay before the first retry; each subsequent
	// delay is multiplied by Multiplier.
	InitialBackoff time.Duration
	Multiplier     float64
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        DefaultTimeout,
		MaxAttempts:    DefaultAttempts,
		InitialBackoff: DefaultBackoff,
		Multiplier:     DefaultMultiplier,
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Universities fetches the full batch of records for one country. Transport
// failures, non-2xx statuses and undecodable bodies are retried with
// exponential backoff up to MaxAttempts; on exhaustion a CatalogRequestError
// is returned and the caller decides whether the run degrades or aborts.
//
// Records missing a name or a country are dropped here; the rest are
// returned in the order the service produced them.
func (c *Client) Universities(ctx context.Context, country string) ([]models.RawRecord, error) {
	log := zap.S().Named("catalog")

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.InitialBackoff
	bo.Multiplier = c.cfg.Multiplier
	bo.RandomizationFactor = 0

	records, err := backoff.Retry(ctx,
		func() ([]models.RawRecord, error) {
			return c.fetchOnce(ctx, country)
		},
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.cfg.MaxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warnw("catalog request failed, retrying",
				"country", country,
				"error", err,
				"retry_in", next)
		}),
	)
	if err != nil {
		return nil, srvErrors.NewCatalogRequestError(country, int(c.cfg.MaxAttempts), err)
	}

	return records, nil
}

func (c *Client) fetchOnce(ctx context.Context, country string) ([]models.RawRecord, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid catalog url %q: %w", c.cfg.BaseURL, err))
	}
	q := u.Query()
	q.Set("country", country)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var raw []models.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	records := make([]models.RawRecord, 0, len(raw))
	for _, r := range raw {
		if r.Valid() {
			records = append(records, r)
		}
	}
	return records, nil
}
