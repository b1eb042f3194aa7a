package ons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	rq "github.com/carlmjohnson/requests"
)

const (
	DefaultBaseURL   = "https://api.beta.ons.gov.uk/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "uk-ons-mcp-server/1.0.0"

	// maxErrorBody bounds how much of a failed response is read for its message.
	maxErrorBody = 64 << 10
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient returns a client for the ONS Beta API. Empty config fields take the defaults.
func NewClient(conf Config) (c *Client, err error) {
	if conf.BaseURL == "" {
		conf.BaseURL = DefaultBaseURL
	}
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultTimeout
	}
	if conf.UserAgent == "" {
		conf.UserAgent = DefaultUserAgent
	}
	if _, err = url.ParseRequestURI(conf.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid ONS API URL %q: %w", conf.BaseURL, err)
	}
	c = new(Client)
	c.baseURL, _ = strings.CutSuffix(conf.BaseURL, "/")
	c.userAgent = conf.UserAgent
	c.httpClient = &http.Client{Timeout: conf.Timeout}
	return
}

// BaseURL returns the API root the client talks to.
func (c Client) BaseURL() string {
	return c.baseURL
}

func (c Client) apiRequests(endpoint string) *rq.Builder {
	uri := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	return rq.URL(uri).
		Client(c.httpClient).
		Accept("application/json").
		UserAgent(c.userAgent).
		AddValidator(validateStatus)
}

// get performs a GET on endpoint and decodes the JSON body into v.
func (c Client) get(ctx context.Context, endpoint string, v any, params ...param) error {
	req := c.apiRequests(endpoint)
	for _, p := range params {
		req.Param(p.key, p.value)
	}
	return fetch(ctx, req.ToJSON(v))
}

type param struct {
	key, value string
}

func validateStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	return classify(res.StatusCode, body)
}

// fetch runs the request and normalises its failure into an *Error.
func fetch(ctx context.Context, req *rq.Builder) error {
	err := req.Fetch(ctx)
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{Kind: KindNetwork, Message: urlErr.Err.Error(), Err: err}
	}
	return fmt.Errorf("failed to decode ONS API response: %w", err)
}
