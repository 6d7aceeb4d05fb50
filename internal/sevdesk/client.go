// Package sevdesk is a small read-only client for the sevDesk REST API. It
// lists vouchers and invoices for a pay-date range and downloads their
// attached documents.
//
// Every call is made exactly once, there is no retry. Authentication uses
// the static API token from the sevDesk user settings, sent in the
// Authorization header.
package sevdesk

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"sevdesk-export/internal/logger"
)

// DefaultBaseURL is the public sevDesk API endpoint.
const DefaultBaseURL = "https://my.sevdesk.de/api/v1/"

// ClientConfig holds the settings of a Client.
type ClientConfig struct {
	// BaseURL of the API. Default: DefaultBaseURL.
	BaseURL string

	// Token is the sevDesk API token.
	Token string

	// Timeout per request. Zero disables the timeout.
	Timeout time.Duration

	// Concurrency caps parallel position requests. Zero means one request
	// per voucher at once.
	Concurrency int
}

// Client talks to the sevDesk API.
type Client struct {
	http        *resty.Client
	concurrency int
	log         zerolog.Logger
}

// NewClient creates a client for the given configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrMissingAPIToken
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", cfg.Token).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	httpClient.JSONMarshal = json.Marshal
	httpClient.JSONUnmarshal = json.Unmarshal

	return &Client{
		http:        httpClient,
		concurrency: cfg.Concurrency,
		log:         logger.WithComponent("sevdesk"),
	}, nil
}

type request struct {
	op         string
	path       string
	query      map[string]string
	pathParams map[string]string
}

// get performs a GET request and decodes a successful response into result.
func (c *Client) get(ctx context.Context, req request, result any) error {
	var apiErr errorEnvelope

	r := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&apiErr)
	if len(req.query) > 0 {
		r.SetQueryParams(req.query)
	}
	if len(req.pathParams) > 0 {
		r.SetPathParams(req.pathParams)
	}

	c.log.Debug().
		Str("op", req.op).
		Str("path", req.path).
		Interface("query", req.query).
		Msg("Calling sevDesk API")

	resp, err := r.Get(req.path)
	if err != nil {
		return &APIError{Op: req.op, Err: err}
	}
	if resp.IsError() {
		return &APIError{
			Op:         req.op,
			StatusCode: resp.StatusCode(),
			Message:    apiErr.message(),
		}
	}

	c.log.Debug().
		Str("op", req.op).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("sevDesk API call finished")

	return nil
}

// epoch renders t as Unix seconds, the date format of the list filters.
func epoch(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
