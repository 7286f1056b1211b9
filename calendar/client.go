package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type Config struct {
	FeedURL string        `envconfig:"FRONTDESK_CALENDAR_FEED_URL"`
	Timeout time.Duration `envconfig:"FRONTDESK_CALENDAR_FEED_TIMEOUT" default:"10s"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

type client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

var _ Provider = &client{}

func NewProvider(config *Config, logger *zap.SugaredLogger) (Provider, error) {
	return &client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}, nil
}

func (c *client) Appointments(ctx context.Context, from, to string) ([]Appointment, Status) {
	if c.config.FeedURL == "" {
		return nil, StatusNotConfigured
	}

	appointments, err := c.fetch(ctx, from, to)
	if err != nil {
		c.logger.Warnw("calendar feed unavailable", "from", from, "to", to, "error", err)
		return nil, StatusUnavailable
	}

	return appointments, StatusOK
}

func (c *client) fetch(ctx context.Context, from, to string) ([]Appointment, error) {
	feedUrl, err := url.Parse(c.config.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}

	query := feedUrl.Query()
	query.Set("from", from)
	query.Set("to", to)
	feedUrl.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected feed response status %d", resp.StatusCode)
	}

	var appointments []Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointments); err != nil {
		return nil, fmt.Errorf("error decoding feed response: %w", err)
	}

	return appointments, nil
}
