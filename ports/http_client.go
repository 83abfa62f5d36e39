package ports

import "net/http"

// HTTPClient is a minimal HTTP client interface for talking to Beanstream.
// Retry, backoff and timeout policy belong to the implementation, not the
// gateway adapter. This also allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
