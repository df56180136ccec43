// Package lookupapi implements the lookup collaborator over HTTP.
//
// Retries for transient transport failures live here, in the adapter, via
// retryablehttp; the pipeline core carries no retry policy of its own.
package lookupapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"orderflow/internal/core/domain/model/lookup"
	"orderflow/internal/core/ports"
)

// Config holds the lookup service connection settings.
type Config struct {
	BaseURL    string
	TimeoutSec int64
	RetryMax   int
}

// Client calls the lookup service. Implements services.LookupClient.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
}

// NewClient creates a lookup client for the configured endpoint.
func NewClient(cfg Config) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = cfg.RetryMax
	c.HTTPClient.Timeout = time.Duration(cfg.TimeoutSec) * time.Second
	c.Logger = nil

	return &Client{
		httpClient: c,
		baseURL:    cfg.BaseURL,
	}
}

// wireResponse is the lookup service's JSON answer. The value field is
// deliberately untyped on the wire.
type wireResponse struct {
	Status string          `json:"status"`
	Value  json.RawMessage `json:"value"`
}

// Lookup calls GET {base}/orders/{id} and maps the answer into the domain
// response. Transport failures, unexpected 5xx-free connectivity problems and
// undecodable bodies wrap ports.ErrLookupUnavailable; a non-2xx answer is a
// regular error-status response, not a fault.
func (c *Client) Lookup(ctx context.Context, orderID int64) (lookup.Response, error) {
	url := fmt.Sprintf("%s/orders/%d", c.baseURL, orderID)

	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return lookup.Response{}, fmt.Errorf("%w: %v", ports.ErrLookupUnavailable, err)
	}

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return lookup.Response{}, fmt.Errorf("%w: %v", ports.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return lookup.Response{Status: lookup.StatusError, Payload: lookup.OtherPayload()}, nil
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return lookup.Response{}, fmt.Errorf("%w: decoding response: %v", ports.ErrLookupUnavailable, err)
	}

	return lookup.Response{
		Status:  lookup.ResponseStatus(wire.Status),
		Payload: decodePayload(wire.Value),
	}, nil
}

// decodePayload decides the payload variant at the collaborator boundary.
// Numeric strings count as numbers; everything else that is a string stays
// text; non-string, non-number JSON values are opaque.
func decodePayload(raw json.RawMessage) lookup.Payload {
	if len(raw) == 0 {
		return lookup.OtherPayload()
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if value, convErr := decimal.NewFromString(text); convErr == nil {
			return lookup.NumberPayload(value)
		}
		return lookup.TextPayload(text)
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		if value, convErr := decimal.NewFromString(number.String()); convErr == nil {
			return lookup.NumberPayload(value)
		}
	}

	return lookup.OtherPayload()
}
