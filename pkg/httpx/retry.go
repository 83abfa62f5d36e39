package httpx

import (
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/raysrashmi/beanstream/ports"
)

// RetryingClient implements ports.HTTPClient with exponential backoff on
// network errors and 5xx responses. The gateway adapter itself carries no
// retry policy; callers who want one wrap their client in this type.
type RetryingClient struct {
	client     *http.Client
	logger     ports.Logger
	maxRetries uint64
}

// NewRetryingClient wraps client with up to maxRetries retries per request.
func NewRetryingClient(client *http.Client, logger ports.Logger, maxRetries uint64) *RetryingClient {
	return &RetryingClient{
		client:     client,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Do executes the request, retrying transient failures. The request body is
// rewound between attempts via GetBody, so requests built from in-memory
// readers (as the gateway does) are safe to retry.
func (c *RetryingClient) Do(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()

	var resp *http.Response
	attempt := 0

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		req.Context(),
	)

	operation := func() error {
		if attempt > 0 {
			if req.GetBody == nil {
				return backoff.Permanent(fmt.Errorf("request body is not replayable"))
			}
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(fmt.Errorf("failed to rewind request body: %w", err))
			}
			req.Body = body

			if c.logger != nil {
				c.logger.Warn("retrying request",
					ports.String("request_id", requestID),
					ports.String("url", req.URL.String()),
					ports.Int("attempt", attempt),
				)
			}
		}
		attempt++

		r, err := c.client.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= 500 {
			r.Body.Close()
			return fmt.Errorf("server returned status %d", r.StatusCode)
		}
		resp = r
		return nil
	}

	if err := backoff.Retry(operation, bo); err != nil {
		if c.logger != nil {
			c.logger.Error("request failed",
				ports.String("request_id", requestID),
				ports.String("url", req.URL.String()),
				ports.Int("attempts", attempt),
				ports.Err(err),
			)
		}
		return nil, err
	}

	return resp, nil
}
