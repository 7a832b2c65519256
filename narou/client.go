package narou

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the sole point of network I/O: a resty session with a fixed
// User-Agent header, a minimum inter-request delay and a bounded retry loop.
// Not safe for concurrent use; the pipeline is strictly sequential.
type Client struct {
	resty   *resty.Client
	delay   time.Duration
	retries int

	lastRequest time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewClient(delay, timeout time.Duration, retries int, userAgent string) *Client {
	if delay < 0 {
		delay = 0
	}
	if retries < 1 {
		retries = 1
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetLogger(disableLogger{})
	return &Client{
		resty:   client,
		delay:   delay,
		retries: retries,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Get fetches a URL, retrying on any network error or non-2xx status.
// After the final attempt fails it returns a FetchError wrapping the last
// error; it never returns a partial response.
func (c *Client) Get(url string) (*resty.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		c.throttle()
		resp, err := c.resty.R().Get(url)
		if err == nil && resp.IsSuccess() {
			return resp, nil
		}
		if err == nil {
			err = fmt.Errorf("unexpected status: %v", resp.Status())
		}
		lastErr = err
		if attempt < c.retries {
			c.sleep(Backoff(attempt))
		}
	}
	return nil, &FetchError{Url: url, Attempts: c.retries, Err: lastErr}
}

// throttle blocks until at least the configured delay has passed since the
// previous request. The timestamp is taken after throttling, not after the
// request completes.
func (c *Client) throttle() {
	if c.delay <= 0 {
		return
	}
	if !c.lastRequest.IsZero() {
		if wait := c.delay - c.now().Sub(c.lastRequest); wait > 0 {
			c.sleep(wait)
		}
	}
	c.lastRequest = c.now()
}

// Backoff returns the wait before retry attempt+1: 0.5s doubling per
// attempt, capped at 5s.
func Backoff(attempt int) time.Duration {
	if attempt >= 5 {
		return 5 * time.Second
	}
	return 500 * time.Millisecond << (attempt - 1)
}

type disableLogger struct{}

func (d disableLogger) Errorf(string, ...interface{}) {}
func (d disableLogger) Warnf(string, ...interface{})  {}
func (d disableLogger) Debugf(string, ...interface{}) {}
