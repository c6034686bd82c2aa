package chessfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const defaultFetchTimeout = 5 * time.Second

// Client is the shared upstream HTTP client for both fetchers. Every request
// carries a hard deadline; failed calls are not retried, a source that does
// not answer in time simply contributes nothing this cycle.
type Client struct {
	http      *fasthttp.Client
	timeout   time.Duration
	userAgent string
}

type ClientOption func(*Client)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

func WithMaxConnsPerHost(n int) ClientOption {
	return func(c *Client) { c.http.MaxConnsPerHost = n }
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http: &fasthttp.Client{
			ReadTimeout:     defaultFetchTimeout,
			WriteTimeout:    defaultFetchTimeout,
			MaxConnsPerHost: 16,
		},
		timeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getBytes performs a GET and returns the body for a 200 response. The body
// is copied out before the response is released back to the pool.
func (c *Client) getBytes(ctx context.Context, url, accept string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(url)
	if c.userAgent != "" {
		req.Header.SetUserAgent(c.userAgent)
	}
	if accept != "" {
		req.Header.Set(fasthttp.HeaderAccept, accept)
	}

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("get %s: %w: status=%d", url, ErrBadStatus, resp.StatusCode())
	}
	return append([]byte(nil), resp.Body()...), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.getBytes(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("get %s: %w: %v", url, ErrDecode, err)
	}
	return nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	clientDL := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(clientDL) {
		return dl
	}
	return clientDL
}
