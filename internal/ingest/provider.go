// Package ingest pulls daily currency rates from the external provider API and
// persists them into the rate store.
package ingest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/exchwatch/currency_exchange_app/internal/utils"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

// RateEntry is one currency's quote in the provider payload. SaleRate and
// PurchaseRate are pointers: non-convertible currencies come without them.
type RateEntry struct {
	BaseCurrency string   `json:"baseCurrency"`
	Currency     string   `json:"currency" validate:"required"`
	SaleRate     *float64 `json:"saleRate"`
	PurchaseRate *float64 `json:"purchaseRate"`
}

// RatePayload is the provider response envelope.
type RatePayload struct {
	Date         string      `json:"date"`
	ExchangeRate []RateEntry `json:"exchangeRate"`
}

// RateFetcher fetches the current day's rates from the external provider.
type RateFetcher interface {
	FetchDailyRates(ctx context.Context) (*RatePayload, error)
}

// Client is the HTTP client for the provider's exchange_rates endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	clock      utils.Clock
}

// NewClient creates a provider client rooted at baseURL. The clock supplies the
// request date; the endpoint is always queried for "today".
func NewClient(baseURL string, clock utils.Clock) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		validate:   validator.New(),
		clock:      clock,
	}
}

// FetchDailyRates performs a single GET for the current day, month and year and
// decodes the JSON payload. Entries that fail structural validation (no currency
// code) are dropped; entries merely missing a rate are kept for the ingester to
// filter.
func (c *Client) FetchDailyRates(ctx context.Context) (*RatePayload, error) {
	now := c.clock.Now()
	url := fmt.Sprintf("%s/exchange_rates?json&date=%d.%d.%d", c.baseURL, now.Day(), int(now.Month()), now.Year())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates from provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned unexpected status %d", resp.StatusCode)
	}

	var payload RatePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode provider payload: %w", err)
	}

	valid := payload.ExchangeRate[:0]
	for _, entry := range payload.ExchangeRate {
		if err := c.validate.Struct(&entry); err != nil {
			continue
		}
		valid = append(valid, entry)
	}
	payload.ExchangeRate = valid

	return &payload, nil
}
