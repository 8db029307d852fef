package fxrates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/magnias/quotedesk/internal/config"
)

// Client exposes the exchange-rate lookups used by the analytics layer.
type Client interface {
	Rate(ctx context.Context, base, quote string) (float64, error)
}

// APIClient is a resty-backed implementation of Client against an
// open.er-api.com compatible endpoint.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an exchange-rate client using the provided configuration.
func NewClient(cfg config.FX) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{httpClient: restyClient}
}

type latestResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Rate fetches the conversion factor from base to quote currency.
func (c *APIClient) Rate(ctx context.Context, base, quote string) (float64, error) {
	result := new(latestResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(fmt.Sprintf("/latest/%s", strings.ToUpper(base)))
	if err != nil {
		return 0, fmt.Errorf("fetch fx rates for %s: %w", base, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("fx rates endpoint returned status %d", resp.StatusCode())
	}
	if result.Result != "" && result.Result != "success" {
		return 0, fmt.Errorf("fx rates endpoint reported result %q", result.Result)
	}

	rate, ok := result.Rates[strings.ToUpper(quote)]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no %s rate in %s response", quote, base)
	}
	return rate, nil
}
